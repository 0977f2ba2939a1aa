package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widthTolerance = 0.01

// threeEqualColumns is the simplest registry: three unbounded star-1 columns.
func threeEqualColumns() []ColumnSpec {
	return []ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 50},
		{Name: "b", Star: 1, MinWidth: 50},
		{Name: "c", Star: 1, MinWidth: 50},
	}
}

func TestColumnWidths_ProportionalDistribution(t *testing.T) {
	// 4 star columns [1,1,2,1] plus a 120px fixed actions column.
	// availableForProportional = 968 - 120 - 48 = 800, widthPerStar = 160.
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "number", Star: 1, MinWidth: 50},
		{Name: "date", Star: 1, MinWidth: 50},
		{Name: "customer", Star: 2, MinWidth: 50},
		{Name: "amount", Star: 1, MinWidth: 50},
		{Name: "actions", Fixed: true, FixedWidth: 120},
	}, DefaultOptions())

	cw.SetAvailableWidth(968)

	assert.InDelta(t, 160, cw.Width("number"), widthTolerance)
	assert.InDelta(t, 160, cw.Width("date"), widthTolerance)
	assert.InDelta(t, 320, cw.Width("customer"), widthTolerance)
	assert.InDelta(t, 160, cw.Width("amount"), widthTolerance)
	assert.InDelta(t, 120, cw.Width("actions"), widthTolerance)
	assert.False(t, cw.NeedsHScroll())
}

func TestColumnWidths_ProportionalityRatio(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "narrow", Star: 1},
		{Name: "wide", Star: 3},
	}, DefaultOptions())

	cw.SetAvailableWidth(448)

	require.Greater(t, cw.Width("narrow"), float32(0))
	assert.InDelta(t, 3, cw.Width("wide")/cw.Width("narrow"), widthTolerance)
}

func TestColumnWidths_ConservationUnderNonOverflow(t *testing.T) {
	for _, available := range []float32{348, 500, 777, 1200} {
		cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
		cw.SetAvailableWidth(available)

		require.False(t, cw.NeedsHScroll())
		total := cw.Width("a") + cw.Width("b") + cw.Width("c")
		assert.InDelta(t, available, total+DefaultEdgePadding, widthTolerance,
			"available=%v", available)
	}
}

func TestColumnWidths_AvailableWidthJitterIgnored(t *testing.T) {
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetAvailableWidth(348)

	published := 0
	cw.SetCallbacks(func(string, float32) { published++ }, nil)

	cw.SetAvailableWidth(348.5)
	assert.Equal(t, 0, published, "sub-pixel container jitter must not republish")
}

func TestColumnWidths_ResizeShiftsRightNeighbors(t *testing.T) {
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetAvailableWidth(348) // 100px each

	cw.ResizeColumn("a", 50)

	assert.InDelta(t, 150, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 150, cw.Width("b")+cw.Width("c"), widthTolerance,
		"b and c together must give up what a gained")
	assert.GreaterOrEqual(t, cw.Width("b"), float32(50))
	assert.GreaterOrEqual(t, cw.Width("c"), float32(50))
	assert.False(t, cw.NeedsHScroll())
}

func TestColumnWidths_ResizeSkipsNeighborAtMinimum(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 50},
		{Name: "b", Star: 1, MinWidth: 100}, // already at its minimum
		{Name: "c", Star: 1, MinWidth: 50},
	}, DefaultOptions())
	cw.SetAvailableWidth(348) // 100px each

	cw.ResizeColumn("a", 30)

	assert.InDelta(t, 130, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 100, cw.Width("b"), widthTolerance, "b has no slack, must not move")
	assert.InDelta(t, 70, cw.Width("c"), widthTolerance, "c absorbs the full delta")
}

func TestColumnWidths_ResizeNoOps(t *testing.T) {
	specs := append(threeEqualColumns(), ColumnSpec{Name: "actions", Fixed: true, FixedWidth: 120})
	cw := NewColumnWidths(specs, DefaultOptions())
	cw.SetAvailableWidth(468)
	cw.SetColumnVisible("c", false)

	before := map[string]float32{}
	for _, name := range cw.Columns() {
		before[name] = cw.Width(name)
	}

	cw.ResizeColumn("actions", 40)  // fixed
	cw.ResizeColumn("c", 40)        // invisible
	cw.ResizeColumn("missing", 40)  // unknown
	cw.ResizeColumn("a", 0.3)       // sub-pixel noise
	cw.ResizeColumn("a", -0.49)

	for _, name := range cw.Columns() {
		assert.InDelta(t, before[name], cw.Width(name), widthTolerance, "column %s", name)
	}
}

func TestColumnWidths_BoundsInvariant(t *testing.T) {
	specs := []ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 60, MaxWidth: 200},
		{Name: "b", Star: 2, MinWidth: 80, MaxWidth: 400},
		{Name: "c", Star: 1, MinWidth: 40},
		{Name: "actions", Fixed: true, FixedWidth: 110},
	}
	cw := NewColumnWidths(specs, DefaultOptions())

	// An arbitrary burst of operations; bounds must hold throughout.
	cw.SetAvailableWidth(900)
	cw.ResizeColumn("a", 300)
	cw.ResizeColumn("b", -500)
	cw.SetColumnVisible("c", false)
	cw.SetAvailableWidth(320)
	cw.SetColumnVisible("c", true)
	cw.ResizeColumn("c", 75.3)
	cw.SetAvailableWidth(1400)

	checks := map[string][2]float32{
		"a": {60, 200},
		"b": {80, 400},
		"c": {40, 1e9},
	}
	for name, bounds := range checks {
		w := cw.Width(name)
		assert.GreaterOrEqual(t, w, bounds[0], "column %s below minimum", name)
		assert.LessOrEqual(t, w, bounds[1], "column %s above maximum", name)
	}
	assert.InDelta(t, 110, cw.Width("actions"), widthTolerance)
}

func TestColumnWidths_OverflowLatch(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 90},
		{Name: "b", Star: 1, MinWidth: 90},
	}, DefaultOptions())
	cw.SetAvailableWidth(248) // 100px each

	// b can only give up 10px; the remaining 40px overflow the viewport.
	cw.ResizeColumn("a", 50)

	assert.InDelta(t, 150, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 90, cw.Width("b"), widthTolerance)
	assert.True(t, cw.NeedsHScroll())
	assert.InDelta(t, 288, cw.MinTotalWidth(), widthTolerance)

	// Minor container growth must preserve the manual sizing.
	cw.SetAvailableWidth(250)
	assert.InDelta(t, 150, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 90, cw.Width("b"), widthTolerance)
	assert.True(t, cw.NeedsHScroll())

	// Growing well past total + hysteresis releases the latch and
	// re-triggers proportional layout.
	cw.SetAvailableWidth(400)
	assert.False(t, cw.NeedsHScroll())
	assert.InDelta(t, 176, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 176, cw.Width("b"), widthTolerance)
}

func TestColumnWidths_ScrollModeBelowMinimums(t *testing.T) {
	layouts := []LayoutInfo{}
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetCallbacks(nil, func(li LayoutInfo) { layouts = append(layouts, li) })

	cw.SetAvailableWidth(150) // minTotal = 3*50 + 48 = 198

	require.NotEmpty(t, layouts)
	last := layouts[len(layouts)-1]
	assert.True(t, last.NeedsHScroll)
	assert.InDelta(t, 198, last.MinTotalWidth, widthTolerance)
	for _, name := range []string{"a", "b", "c"} {
		assert.InDelta(t, 50, cw.Width(name), widthTolerance, "column %s", name)
	}
}

func TestColumnWidths_VisibilityToggle(t *testing.T) {
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetAvailableWidth(348) // 100px each

	cw.SetColumnVisible("c", false)

	assert.Equal(t, []string{"a", "b"}, cw.VisibleColumns())
	assert.InDelta(t, 148, cw.MinTotalWidth(), widthTolerance, "hidden column leaves the minimum total")
	assert.InDelta(t, 150, cw.Width("a"), widthTolerance, "hidden column's share is redistributed")
	assert.InDelta(t, 150, cw.Width("b"), widthTolerance)

	cw.SetColumnVisible("c", true)

	assert.Equal(t, []string{"a", "b", "c"}, cw.VisibleColumns())
	for _, name := range []string{"a", "b", "c"} {
		assert.InDelta(t, 100, cw.Width(name), widthTolerance, "column %s", name)
	}
}

func TestColumnWidths_AutoSize(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 50, Preferred: 120},
		{Name: "b", Star: 1, MinWidth: 50},
		{Name: "c", Star: 1, MinWidth: 50},
	}, DefaultOptions())
	cw.SetAvailableWidth(348) // 100px each

	t.Run("preferred fallback", func(t *testing.T) {
		cw.AutoSizeColumn("a")
		assert.InDelta(t, 120, cw.Width("a"), widthTolerance)
	})

	t.Run("registered content wins", func(t *testing.T) {
		cw.RegisterContentWidth("a", 140)
		cw.RegisterContentWidth("a", 180)
		cw.RegisterContentWidth("a", 160) // only the maximum is kept

		cw.AutoSizeColumn("a")
		assert.InDelta(t, 180, cw.Width("a"), widthTolerance)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := cw.Width("a")
		b, c := cw.Width("b"), cw.Width("c")

		cw.AutoSizeColumn("a")

		assert.InDelta(t, first, cw.Width("a"), widthTolerance)
		assert.InDelta(t, b, cw.Width("b"), widthTolerance)
		assert.InDelta(t, c, cw.Width("c"), widthTolerance)
	})

	t.Run("fixed and hidden are no-ops", func(t *testing.T) {
		cw.SetColumnVisible("b", false)
		before := cw.Width("b")
		cw.AutoSizeColumn("b")
		assert.InDelta(t, before, cw.Width("b"), widthTolerance)
	})
}

func TestColumnWidths_AutoSizeRespectsMax(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "a", Star: 1, MinWidth: 50, MaxWidth: 150},
		{Name: "b", Star: 1, MinWidth: 50},
	}, DefaultOptions())
	cw.SetAvailableWidth(348)

	cw.RegisterContentWidth("a", 400)
	cw.AutoSizeColumn("a")

	assert.InDelta(t, 150, cw.Width("a"), widthTolerance)
}

func TestColumnWidths_ProportionalFloorOnTinyContainer(t *testing.T) {
	// A degenerate container must never produce negative widths, only the
	// scroll-mode minimum layout.
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetAvailableWidth(10)

	for _, name := range []string{"a", "b", "c"} {
		assert.GreaterOrEqual(t, cw.Width(name), float32(50), "column %s", name)
	}
	assert.True(t, cw.NeedsHScroll())
}

func TestColumnWidths_CallbackReentrancyGuard(t *testing.T) {
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())

	// A width sink that pokes the engine back, the way a layout callback
	// chain can in the view layer. The epsilon and re-entrancy guards must
	// keep this from recursing.
	calls := 0
	cw.SetCallbacks(func(name string, w float32) {
		calls++
		require.Less(t, calls, 1000, "publish loop detected")
		cw.SetAvailableWidth(cw.available)
		cw.SetColumnVisible("b", cw.IsVisible("b"))
	}, nil)

	cw.SetAvailableWidth(348)
	assert.Greater(t, calls, 0)
}

func TestColumnWidths_PerColumnCallback(t *testing.T) {
	widths := map[string]float32{}
	cw := NewColumnWidths(threeEqualColumns(), DefaultOptions())
	cw.SetCallbacks(func(name string, w float32) { widths[name] = w }, nil)

	cw.SetAvailableWidth(348)

	require.Len(t, widths, 3)
	for name, w := range widths {
		assert.InDelta(t, cw.Width(name), w, widthTolerance, "column %s", name)
	}
}

func TestColumnWidths_CustomOptions(t *testing.T) {
	cw := NewColumnWidths([]ColumnSpec{
		{Name: "a", Star: 1},
		{Name: "b", Star: 1},
	}, Options{EdgePadding: 0, OverflowHysteresis: 0})

	cw.SetAvailableWidth(300)

	assert.InDelta(t, 150, cw.Width("a"), widthTolerance)
	assert.InDelta(t, 150, cw.Width("b"), widthTolerance)
}
