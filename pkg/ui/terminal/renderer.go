// Package terminal provides styled output for interactive terminals
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cs01/pkg/display"
	"github.com/arthur-debert/cs01/pkg/paths"
	"github.com/arthur-debert/cs01/pkg/style"
	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer renders results with lipgloss styles and pterm tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type with rich formatting
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
	indicator := style.SuccessIndicator
	if res.DryRun {
		indicator = style.PendingIndicator
	}
	line := fmt.Sprintf("%s %s", indicator, style.Bold(display.InitMessage(res)))
	if _, err := fmt.Fprintln(r.output, line); err != nil {
		return err
	}

	rows := display.Rows(res)
	if len(rows) == 0 {
		return nil
	}

	data := pterm.TableData{{"Action", "Path"}}
	for _, row := range rows {
		data = append(data, []string{
			style.ActionStyle(row.Kind).Render(row.Label),
			style.PathStyle.Render(paths.Display(row.Path)),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, style.MutedStyle.Render(display.Summary(res.Report)))
	return err
}

func (r *Renderer) renderGenConfig(res *types.GenConfigResult) error {
	switch {
	case res.Written == "":
		_, err := fmt.Fprint(r.output, res.Content)
		return err
	case res.Skipped:
		_, err := fmt.Fprintf(r.output, "%s Config file %s already exists, left unchanged\n",
			style.WarningStyle.Render("!"), style.PathStyle.Render(paths.Display(res.Written)))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%s Wrote %s\n",
			style.SuccessIndicator, style.PathStyle.Render(paths.Display(res.Written)))
		return err
	}
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorStyle.Render("Error:"), err.Error())
	return writeErr
}
