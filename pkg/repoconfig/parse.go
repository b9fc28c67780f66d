package repoconfig

import (
	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/go-ini/ini"
)

// CoreSettings is the [core] section of a repository configuration file.
type CoreSettings struct {
	Bare                    bool
	RepositoryFormatVersion int
	FileMode                bool
	LogAllRefUpdates        bool
}

// CoreConfig returns the configuration written into new repositories.
func CoreConfig(bare bool) *Object {
	return Section("core",
		Entry{Key: "bare", Value: bare},
		Entry{Key: "repositoryformatversion", Value: 0},
		Entry{Key: "filemode", Value: true},
		Entry{Key: "logallrefupdates", Value: true},
	)
}

// ParseCore reads the [core] section out of configuration text.
func ParseCore(data []byte) (*CoreSettings, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidConfig, "failed to parse repository config")
	}

	section, err := file.GetSection("core")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidConfig, "repository config has no [core] section")
	}

	return &CoreSettings{
		Bare:                    section.Key("bare").MustBool(false),
		RepositoryFormatVersion: section.Key("repositoryformatversion").MustInt(0),
		FileMode:                section.Key("filemode").MustBool(true),
		LogAllRefUpdates:        section.Key("logallrefupdates").MustBool(false),
	}, nil
}

// ReadCore loads and parses the configuration file at path.
func ReadCore(fsys types.FS, path string) (*CoreSettings, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.IOError(err, "read", path)
	}
	return ParseCore(data)
}
