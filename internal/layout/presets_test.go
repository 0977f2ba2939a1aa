package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset_AllPagesHaveValidRegistries(t *testing.T) {
	for _, name := range PresetNames() {
		specs := Preset(name)
		require.NotEmpty(t, specs, "preset %s", name)

		seen := map[string]bool{}
		for _, spec := range specs {
			assert.NotEmpty(t, spec.Name, "preset %s has unnamed column", name)
			assert.False(t, seen[spec.Name], "preset %s duplicates column %s", name, spec.Name)
			seen[spec.Name] = true

			if spec.Fixed {
				assert.Greater(t, spec.FixedWidth, float32(0),
					"preset %s fixed column %s needs a width", name, spec.Name)
				continue
			}
			if spec.MaxWidth > 0 {
				assert.LessOrEqual(t, spec.MinWidth, spec.MaxWidth,
					"preset %s column %s min exceeds max", name, spec.Name)
			}
			if spec.Preferred > 0 {
				assert.GreaterOrEqual(t, spec.Preferred, spec.MinWidth,
					"preset %s column %s preferred below min", name, spec.Name)
			}
		}
	}
}

func TestPreset_UnknownNameReturnsNil(t *testing.T) {
	assert.Nil(t, Preset("payroll"))
}

func TestPreset_ReturnsACopy(t *testing.T) {
	first := Preset(PresetInvoices)
	first[0].MinWidth = 999

	second := Preset(PresetInvoices)
	assert.NotEqual(t, float32(999), second[0].MinWidth)
}

func TestPreset_RegistriesDriveTheEngine(t *testing.T) {
	for _, name := range PresetNames() {
		cw := NewColumnWidths(Preset(name), DefaultOptions())
		cw.SetAvailableWidth(1100)

		require.False(t, cw.NeedsHScroll(), "preset %s should fit 1100px", name)
		for _, col := range cw.VisibleColumns() {
			assert.Greater(t, cw.Width(col), float32(0), "preset %s column %s", name, col)
		}
	}
}
