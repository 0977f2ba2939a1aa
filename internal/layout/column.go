package layout

import (
	"github.com/chewxy/math32"
)

// Default chrome constants. Both are presentation-tuned values that callers
// can override through Options.
const (
	// DefaultEdgePadding is the container chrome (left+right padding)
	// subtracted from the available width before distribution.
	DefaultEdgePadding float32 = 48

	// DefaultOverflowHysteresis is the extra room the container must gain
	// before a manual overflow is released back to proportional layout.
	DefaultOverflowHysteresis float32 = 50
)

// ColumnSpec describes one column's layout contract. A table declares an
// ordered slice of specs once; the order is the left-to-right display order
// and never changes afterwards.
type ColumnSpec struct {
	// Name uniquely identifies the column within its table.
	Name string

	// Star is the proportional weight among non-fixed columns. Zero or
	// negative values are normalized to 1 for non-fixed columns.
	Star float32

	// MinWidth and MaxWidth bound the column's width in pixels.
	// MaxWidth <= 0 means unbounded.
	MinWidth float32
	MaxWidth float32

	// Preferred is the auto-size target used when no content width has
	// been registered for the column.
	Preferred float32

	// Fixed columns always occupy exactly FixedWidth and never take part
	// in proportional distribution or shrink redistribution.
	Fixed      bool
	FixedWidth float32

	// Hidden starts the column invisible.
	Hidden bool
}

// column is the mutable per-column state owned by the engine.
type column struct {
	spec    ColumnSpec
	visible bool
	width   float32 // last computed/assigned width
	content float32 // widest registered content width, 0 if none
}

func newColumn(spec ColumnSpec) *column {
	if !spec.Fixed && spec.Star <= 0 {
		spec.Star = 1
	}
	c := &column{
		spec:    spec,
		visible: !spec.Hidden,
	}
	c.width = c.initialWidth()
	return c
}

// initialWidth is the width a column takes before the first layout pass.
func (c *column) initialWidth() float32 {
	if c.spec.Fixed {
		return c.spec.FixedWidth
	}
	if c.spec.Preferred > 0 {
		return c.clamp(c.spec.Preferred)
	}
	return c.spec.MinWidth
}

// max returns the effective upper bound, treating MaxWidth <= 0 as unbounded.
func (c *column) max() float32 {
	if c.spec.MaxWidth <= 0 {
		return math32.Inf(1)
	}
	return c.spec.MaxWidth
}

// clamp bounds w to the column's [MinWidth, MaxWidth] range.
func (c *column) clamp(w float32) float32 {
	return math32.Min(math32.Max(w, c.spec.MinWidth), c.max())
}

// minOrFixed is the narrowest legal width for the column.
func (c *column) minOrFixed() float32 {
	if c.spec.Fixed {
		return c.spec.FixedWidth
	}
	return c.spec.MinWidth
}

// slack is how much the column can still shrink before hitting its minimum.
func (c *column) slack() float32 {
	if c.spec.Fixed {
		return 0
	}
	return math32.Max(0, c.width-c.spec.MinWidth)
}
