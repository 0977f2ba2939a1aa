package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOverrides_MissingFileIsEmpty(t *testing.T) {
	ov, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	specs := Preset(PresetInvoices)
	assert.Equal(t, specs, ov.Apply(PresetInvoices, specs))
}

func TestLoadOverrides_MalformedFileErrors(t *testing.T) {
	path := writeOverrideFile(t, "presets: [not, a, map]")
	_, err := LoadOverrides(path)
	assert.Error(t, err)
}

func TestOverrides_Apply(t *testing.T) {
	path := writeOverrideFile(t, `
presets:
  invoices:
    customer: {star: 3, min: 160}
    status: {hidden: true}
    no_such_column: {star: 9}
`)
	ov, err := LoadOverrides(path)
	require.NoError(t, err)

	specs := ov.Apply(PresetInvoices, Preset(PresetInvoices))

	byName := map[string]ColumnSpec{}
	for _, s := range specs {
		byName[s.Name] = s
	}
	assert.Equal(t, float32(3), byName["customer"].Star)
	assert.Equal(t, float32(160), byName["customer"].MinWidth)
	assert.True(t, byName["status"].Hidden)
	// Untouched columns keep their built-in values.
	assert.Equal(t, float32(1), byName["number"].Star)
}

func TestOverrides_ApplyOtherPresetUntouched(t *testing.T) {
	path := writeOverrideFile(t, `
presets:
  invoices:
    customer: {star: 3}
`)
	ov, err := LoadOverrides(path)
	require.NoError(t, err)

	specs := Preset(PresetCustomers)
	assert.Equal(t, specs, ov.Apply(PresetCustomers, specs))
}
