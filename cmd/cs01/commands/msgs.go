package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Create and repair CS01 repositories"
	MsgInitShort       = "Create an empty repository or repair an existing one"
	MsgGenConfigShort  = "Print or save the cs01 configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "List the available help topics"
	MsgTopicsLong      = "List the help topics that can be read with 'cs01 help <topic>'."

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagConfig        = "Config file (default is $XDG_CONFIG_HOME/cs01/config.toml)"
	MsgFlagBare          = "Create a bare repository"
	MsgFlagInitialBranch = "Name of the initial branch (default from config, main)"
	MsgFlagDryRun        = "Show what would be created without touching the disk"
	MsgFlagForce         = "Rewrite existing metadata files with their defaults"
	MsgFlagYAML          = "Print YAML instead of TOML"
	MsgFlagTemplate      = "Print the commented defaults file"
	MsgFlagWrite         = "Save to the cs01 config directory instead of printing"

	// Version output
	MsgVersionFormat = "cs01 version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
