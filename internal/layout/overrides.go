package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnOverride adjusts selected fields of one column spec. Nil fields keep
// the built-in value.
type ColumnOverride struct {
	Star      *float32 `yaml:"star"`
	MinWidth  *float32 `yaml:"min"`
	MaxWidth  *float32 `yaml:"max"`
	Preferred *float32 `yaml:"preferred"`
	Hidden    *bool    `yaml:"hidden"`
}

// Overrides holds per-preset, per-column tuning loaded from a YAML file:
//
//	presets:
//	  invoices:
//	    customer: {star: 3, min: 160}
//	    status:   {hidden: true}
type Overrides struct {
	Presets map[string]map[string]ColumnOverride `yaml:"presets"`
}

// LoadOverrides reads a YAML override file. A missing path returns empty
// overrides rather than an error so the launcher can pass a default location.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Overrides{}, nil
		}
		return nil, fmt.Errorf("read layout overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse layout overrides %s: %w", path, err)
	}
	return &ov, nil
}

// Apply returns specs with the overrides for the named preset applied.
// Unknown columns in the override file are ignored.
func (ov *Overrides) Apply(preset string, specs []ColumnSpec) []ColumnSpec {
	if ov == nil || ov.Presets == nil {
		return specs
	}
	columns, ok := ov.Presets[preset]
	if !ok {
		return specs
	}

	out := make([]ColumnSpec, len(specs))
	copy(out, specs)
	for i := range out {
		o, ok := columns[out[i].Name]
		if !ok {
			continue
		}
		if o.Star != nil {
			out[i].Star = *o.Star
		}
		if o.MinWidth != nil {
			out[i].MinWidth = *o.MinWidth
		}
		if o.MaxWidth != nil {
			out[i].MaxWidth = *o.MaxWidth
		}
		if o.Preferred != nil {
			out[i].Preferred = *o.Preferred
		}
		if o.Hidden != nil {
			out[i].Hidden = *o.Hidden
		}
	}
	return out
}
