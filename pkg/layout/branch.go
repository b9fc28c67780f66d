package layout

import (
	"strings"

	"github.com/arthur-debert/cs01/pkg/errors"
)

// ValidateBranchName checks that name can be used as refs/heads/<name>.
// Components are separated by "/" and become nested directories.
func ValidateBranchName(name string) error {
	invalid := func(reason string) error {
		return errors.Newf(errors.ErrInvalidInput, "invalid branch name %q: %s", name, reason).
			WithDetail("branch", name)
	}

	switch {
	case name == "":
		return invalid("name is empty")
	case name == "@":
		return invalid("name cannot be '@'")
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return invalid("name cannot start or end with '/'")
	case strings.HasSuffix(name, "."):
		return invalid("name cannot end with '.'")
	case strings.Contains(name, ".."):
		return invalid("name cannot contain '..'")
	case strings.Contains(name, "@{"):
		return invalid("name cannot contain '@{'")
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return invalid("name cannot contain control characters")
		}
		if strings.ContainsRune(" ~^:?*[\\", r) {
			return invalid("name cannot contain '" + string(r) + "'")
		}
	}

	for _, part := range strings.Split(name, "/") {
		if part == "" {
			return invalid("name cannot contain empty components")
		}
		if strings.HasPrefix(part, ".") {
			return invalid("components cannot start with '.'")
		}
		if strings.HasSuffix(part, ".lock") {
			return invalid("components cannot end with '.lock'")
		}
	}
	return nil
}
