package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are rendered.
type Format int

const (
	// FormatAuto picks term for color terminals and text otherwise.
	FormatAuto Format = iota
	// FormatTerminal styles output with colors and tables.
	FormatTerminal
	// FormatText is plain text.
	FormatText
	// FormatJSON is one JSON document per result.
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// formatAliases maps every accepted spelling, lower case, to its format.
// The empty string is the unset config value.
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// String returns the name used in flags and config files.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat reads a --format or output.format value, ignoring case.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
}

// DetectFormat resolves FormatAuto for output. NO_COLOR, a pipe or a
// terminal without colors give text.
func DetectFormat(output *os.File) Format {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()):
		return FormatText
	case termenv.ColorProfile() == termenv.Ascii:
		return FormatText
	default:
		return FormatTerminal
	}
}
