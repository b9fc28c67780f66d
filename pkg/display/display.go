// Package display turns command results into the sentences and rows shown
// to the user. The ui renderers decide how those are styled.
package display

import (
	"fmt"

	"github.com/arthur-debert/cs01/pkg/types"
)

// InitMessage is the one-line outcome of an init.
func InitMessage(r *types.InitResult) string {
	kind := types.KindName(r.Bare)
	var msg string
	if r.Reinitialized {
		msg = fmt.Sprintf("Reinitialized existing %s CS01 repository in %s", kind, r.Path)
	} else {
		note := ""
		if !r.Bare {
			note = fmt.Sprintf(" (with %s directory)", types.MetadataDirName)
		}
		msg = fmt.Sprintf("Initialized empty %s CS01 repository in %s%s", kind, r.Path, note)
	}
	if r.DryRun {
		msg = "Dry run: " + msg
	}
	return msg
}

// ActionLabel names an action for humans.
func ActionLabel(kind types.WriteActionKind, dryRun bool) string {
	var label string
	switch kind {
	case types.ActionCreateDir:
		label = "create"
	case types.ActionWriteFile:
		label = "write"
	case types.ActionSkipExisting:
		return "keep"
	default:
		return string(kind)
	}
	if dryRun {
		return "would " + label
	}
	return label
}

// Row is one line of the action listing.
type Row struct {
	Kind  types.WriteActionKind
	Label string
	Path  string
}

// Rows lists the actions worth showing. Outside a dry run only repairs are
// interesting, so a plain fresh init shows nothing.
func Rows(r *types.InitResult) []Row {
	if r.Report == nil {
		return nil
	}
	if !r.DryRun && !r.Reinitialized {
		return nil
	}

	var rows []Row
	for _, a := range r.Report.Actions {
		if !r.DryRun && a.Kind == types.ActionSkipExisting {
			continue
		}
		rows = append(rows, Row{Kind: a.Kind, Label: ActionLabel(a.Kind, r.DryRun), Path: a.Path})
	}
	return rows
}

// Summary counts the actions, for example "3 created, 2 kept".
func Summary(report *types.WriteReport) string {
	if report == nil {
		return ""
	}
	created := report.Count(types.ActionCreateDir) + report.Count(types.ActionWriteFile)
	kept := report.Count(types.ActionSkipExisting)
	if report.DryRun {
		return fmt.Sprintf("%d to create, %d kept", created, kept)
	}
	return fmt.Sprintf("%d created, %d kept", created, kept)
}
