// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cs01/pkg/display"
	"github.com/arthur-debert/cs01/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.InitResult:
		return r.renderInit(v)
	case *types.GenConfigResult:
		return r.renderGenConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderInit(res *types.InitResult) error {
	if _, err := fmt.Fprintln(r.output, display.InitMessage(res)); err != nil {
		return err
	}

	rows := display.Rows(res)
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(r.output, "  %-12s %s\n", row.Label, row.Path); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, display.Summary(res.Report))
	return err
}

func (r *Renderer) renderGenConfig(res *types.GenConfigResult) error {
	switch {
	case res.Written == "":
		_, err := fmt.Fprint(r.output, res.Content)
		return err
	case res.Skipped:
		_, err := fmt.Fprintf(r.output, "Config file %s already exists, left unchanged\n", res.Written)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "Wrote %s\n", res.Written)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}
