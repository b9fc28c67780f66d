package types

// GenConfigResult holds the result of the 'genconfig' command.
type GenConfigResult struct {
	// Format is toml, yaml or template.
	Format  string `json:"format"`
	Content string `json:"content"`
	// Written is the file the content was saved to, empty when printed only.
	Written string `json:"written,omitempty"`
	// Skipped is set when the target file already existed.
	Skipped bool `json:"skipped,omitempty"`
}
