package repoconfig

import (
	"strings"
	"testing"

	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_Basic(t *testing.T) {
	out, err := Serialize(Section("core", Entry{Key: "bare", Value: false}))
	require.NoError(t, err)

	assert.Equal(t, "[core]\n  bare = false\n", out)

	var headers []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "[") {
			headers = append(headers, line)
		}
	}
	assert.Equal(t, []string{"[core]"}, headers)
}

func TestSerialize_Subsection(t *testing.T) {
	config := NewObject(Entry{Key: "remote", Value: NewObject(
		Entry{Key: "origin", Value: NewObject(Entry{Key: "url", Value: "https://example.com"})},
	)})

	out, err := Serialize(config)
	require.NoError(t, err)
	assert.Equal(t, "[remote \"origin\"]\n  url = https://example.com\n", out)
}

func TestSerialize_SubsectionNameIsVerbatim(t *testing.T) {
	config := NewObject(Entry{Key: "branch", Value: NewObject(
		Entry{Key: "feat\tx\u00e9", Value: NewObject(Entry{Key: "merge", Value: "refs/heads/x"})},
	)})

	out, err := Serialize(config)
	require.NoError(t, err)
	assert.Equal(t, "[branch \"feat\tx\u00e9\"]\n  merge = refs/heads/x\n", out)
}

func TestSerialize_ScalarTypes(t *testing.T) {
	config := Section("user",
		Entry{Key: "id", Value: 123},
		Entry{Key: "active", Value: true},
		Entry{Key: "ratio", Value: 0.5},
		Entry{Key: "scale", Value: 1.0},
		Entry{Key: "weight", Value: float32(2)},
		Entry{Key: "big", Value: int64(1) << 40},
		Entry{Key: "name", Value: "Ada Lovelace"},
		Entry{Key: "nothing", Value: nil},
	)

	out, err := Serialize(config)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"[user]",
		"  id = 123",
		"  active = true",
		"  ratio = 0.5",
		"  scale = 1.0",
		"  weight = 2.0",
		"  big = 1099511627776",
		"  name = Ada Lovelace",
		"  nothing = null",
		"",
	}, "\n"), out)
}

func TestSerialize_ObjectValuesAreCompactJSON(t *testing.T) {
	nested := NewObject(
		Entry{Key: "z", Value: 1},
		Entry{Key: "a", Value: "two"},
	)
	config := Section("extra",
		Entry{Key: "meta", Value: nested},
		Entry{Key: "list", Value: []any{1, "x", false}},
	)

	out, err := Serialize(config)
	require.NoError(t, err)

	assert.Contains(t, out, `  meta = {"z":1,"a":"two"}`)
	assert.Contains(t, out, `  list = [1,"x",false]`)
}

func TestSerialize_PreservesInsertionOrder(t *testing.T) {
	config := NewObject(
		Entry{Key: "zeta", Value: NewObject(Entry{Key: "", Value: NewObject(Entry{Key: "k", Value: 1})})},
		Entry{Key: "alpha", Value: NewObject(
			Entry{Key: "", Value: NewObject(Entry{Key: "y", Value: 2}, Entry{Key: "b", Value: 3})},
			Entry{Key: "sub", Value: NewObject(Entry{Key: "k", Value: 4})},
		)},
	)

	out, err := Serialize(config)
	require.NoError(t, err)

	assert.Equal(t, "[zeta]\n  k = 1\n[alpha]\n  y = 2\n  b = 3\n[alpha \"sub\"]\n  k = 4\n", out)
}

func TestSerialize_CoreConfig(t *testing.T) {
	out, err := Serialize(CoreConfig(false))
	require.NoError(t, err)

	assert.Equal(t, "[core]\n  bare = false\n  repositoryformatversion = 0\n  filemode = true\n  logallrefupdates = true\n", out)
}

func TestSerialize_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		config any
	}{
		{"empty object", NewObject()},
		{"nil", nil},
		{"nil object pointer", (*Object)(nil)},
		{"array", []any{}},
		{"string", "core"},
		{"plain map", map[string]any{"core": map[string]any{}}},
		{"section not an object", NewObject(Entry{Key: "core", Value: true})},
		{"subsection not an object", NewObject(Entry{Key: "core", Value: NewObject(Entry{Key: "", Value: "bare"})})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Serialize(tt.config)
			assert.Empty(t, out)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConfig), "got %v", err)
		})
	}
}
