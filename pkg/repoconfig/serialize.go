package repoconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/cs01/pkg/errors"
	json "github.com/goccy/go-json"
)

// Serialize renders config as repository configuration text. config must be a
// non-empty *Object whose sections and subsections are themselves objects.
func Serialize(config any) (string, error) {
	root, ok := asObject(config)
	if !ok || root.Len() == 0 {
		return "", errors.New(errors.ErrInvalidConfig, "invalid config: must be a non-empty object")
	}

	var out strings.Builder
	for section := root.Oldest(); section != nil; section = section.Next() {
		subsections, ok := asObject(section.Value)
		if !ok {
			return "", errors.Newf(errors.ErrInvalidConfig,
				"invalid section %q: must contain subsection objects", section.Key).
				WithDetail("section", section.Key)
		}

		for sub := subsections.Oldest(); sub != nil; sub = sub.Next() {
			settings, ok := asObject(sub.Value)
			if !ok {
				return "", errors.Newf(errors.ErrInvalidConfig,
					"invalid settings for [%s]: must be an object", section.Key).
					WithDetail("section", section.Key).
					WithDetail("subsection", sub.Key)
			}

			out.WriteString(header(section.Key, sub.Key))
			for setting := settings.Oldest(); setting != nil; setting = setting.Next() {
				value, err := formatValue(setting.Value)
				if err != nil {
					return "", errors.Wrapf(err, errors.ErrInvalidConfig,
						"invalid value for %s.%s", section.Key, setting.Key)
				}
				fmt.Fprintf(&out, "  %s = %s\n", setting.Key, value)
			}
		}
	}

	return out.String(), nil
}

func asObject(v any) (*Object, bool) {
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

func header(section, subsection string) string {
	if subsection == "" {
		return "[" + section + "]\n"
	}
	// The subsection name is written verbatim between the quotes.
	return "[" + section + ` "` + subsection + `"]` + "\n"
}

func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val), nil
	case float32:
		return formatFloat(float64(val), 32), nil
	case float64:
		return formatFloat(val, 64), nil
	default:
		// Objects, arrays and anything else render as compact JSON.
		data, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// formatFloat keeps a fractional part on whole numbers, so 1.0 stays "1.0"
// and never reads back as an integer.
func formatFloat(f float64, bitSize int) string {
	out := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(out, ".") {
		return out
	}
	return out + ".0"
}
