package types

// Repository layout names
const (
	// MetadataDirName is the folder holding the metadata of a standard repository.
	MetadataDirName = ".cs01-root"

	// ConfigFileName is the repository configuration file.
	ConfigFileName = "config"

	// CoreMarker is the header a bare repository's config file starts with.
	CoreMarker = "[core]"

	// DefaultBranch is the initial branch when none is configured.
	DefaultBranch = "main"
)

// RepoRoot is a directory known, at the time of the lookup, to hold
// repository metadata. It is recomputed on every lookup.
type RepoRoot struct {
	Path string `json:"path"`
	Bare bool   `json:"bare"`
}

// Kind returns "bare" or "standard".
func (r RepoRoot) Kind() string {
	return KindName(r.Bare)
}

// KindName returns the name of a repository kind.
func KindName(bare bool) string {
	if bare {
		return "bare"
	}
	return "standard"
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	// Path is the absolute target directory.
	Path string `json:"path"`
	// MetadataDir is where the metadata lives: Path itself for bare repositories.
	MetadataDir   string       `json:"metadataDir"`
	Bare          bool         `json:"bare"`
	InitialBranch string       `json:"initialBranch"`
	Reinitialized bool         `json:"reinitialized"`
	DryRun        bool         `json:"dryRun"`
	Report        *WriteReport `json:"report"`
}
