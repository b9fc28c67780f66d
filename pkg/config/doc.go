// Package config loads the cs01 application configuration.
//
// Sources are layered with koanf, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user file: the explicit path, $CS01_CONFIG, or the first of
//     config.toml / config.yaml / config.yml in the cs01 config dir
//  3. CS01_<SECTION>_<KEY> environment variables
//  4. command line overrides
//
// The merged map is decoded with mapstructure into Config and validated.
package config
