package display

import (
	"testing"

	"github.com/arthur-debert/cs01/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestInitMessage(t *testing.T) {
	tests := []struct {
		name   string
		result types.InitResult
		want   string
	}{
		{
			name:   "standard",
			result: types.InitResult{Path: "/work/p"},
			want:   "Initialized empty standard CS01 repository in /work/p (with .cs01-root directory)",
		},
		{
			name:   "bare",
			result: types.InitResult{Path: "/srv/p.cs01", Bare: true},
			want:   "Initialized empty bare CS01 repository in /srv/p.cs01",
		},
		{
			name:   "reinitialized",
			result: types.InitResult{Path: "/work/p", Reinitialized: true},
			want:   "Reinitialized existing standard CS01 repository in /work/p",
		},
		{
			name:   "dry run",
			result: types.InitResult{Path: "/srv/p", Bare: true, DryRun: true},
			want:   "Dry run: Initialized empty bare CS01 repository in /srv/p",
		},
		{
			name:   "dry run repair",
			result: types.InitResult{Path: "/work/p", Reinitialized: true, DryRun: true},
			want:   "Dry run: Reinitialized existing standard CS01 repository in /work/p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitMessage(&tt.result))
		})
	}
}

func TestRows(t *testing.T) {
	report := &types.WriteReport{}
	report.Add(types.ActionSkipExisting, "/r/.cs01-root/config")
	report.Add(types.ActionWriteFile, "/r/.cs01-root/HEAD")

	t.Run("fresh init shows nothing", func(t *testing.T) {
		assert.Empty(t, Rows(&types.InitResult{Report: report}))
	})

	t.Run("repair shows only changes", func(t *testing.T) {
		rows := Rows(&types.InitResult{Report: report, Reinitialized: true})
		assert.Equal(t, []Row{{Kind: types.ActionWriteFile, Label: "write", Path: "/r/.cs01-root/HEAD"}}, rows)
	})

	t.Run("dry run shows everything", func(t *testing.T) {
		dry := &types.WriteReport{DryRun: true, Actions: report.Actions}
		rows := Rows(&types.InitResult{Report: dry, DryRun: true})
		assert.Len(t, rows, 2)
		assert.Equal(t, "keep", rows[0].Label)
		assert.Equal(t, "would write", rows[1].Label)
	})
}

func TestSummary(t *testing.T) {
	report := &types.WriteReport{}
	report.Add(types.ActionCreateDir, "/r")
	report.Add(types.ActionWriteFile, "/r/HEAD")
	report.Add(types.ActionSkipExisting, "/r/config")

	assert.Equal(t, "2 created, 1 kept", Summary(report))
	report.DryRun = true
	assert.Equal(t, "2 to create, 1 kept", Summary(report))
	assert.Empty(t, Summary(nil))
}
