package layout

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// Epsilon thresholds guarding against layout jitter and publish loops.
const (
	// availableEpsilon ignores sub-pixel container resize noise.
	availableEpsilon float32 = 1

	// resizeEpsilon ignores sub-pixel drag deltas.
	resizeEpsilon float32 = 0.5

	// publishEpsilon suppresses width callbacks for invisible changes.
	publishEpsilon float32 = 0.01

	// proportionalFloor keeps distribution sane during transient layout
	// states where the container briefly reports tiny or negative space.
	proportionalFloor float32 = 100

	// maxShrinkPasses bounds the redistribution loop. Each pass can pin
	// more columns at their minimum, so a handful of passes settles any
	// realistic registry.
	maxShrinkPasses = 10
)

// Options tunes the container chrome assumed by the engine.
type Options struct {
	// EdgePadding is subtracted from the available width before any
	// distribution. Negative values are treated as zero.
	EdgePadding float32

	// OverflowHysteresis is the margin by which the available width must
	// exceed the current total before a manual overflow is cleared.
	OverflowHysteresis float32
}

// DefaultOptions returns the chrome values used by the stock table template.
func DefaultOptions() Options {
	return Options{
		EdgePadding:        DefaultEdgePadding,
		OverflowHysteresis: DefaultOverflowHysteresis,
	}
}

// LayoutInfo is the batched summary published after every public operation.
type LayoutInfo struct {
	// MinTotalWidth is the narrowest width the table content can occupy,
	// including edge padding. The container reports it to its scroller.
	MinTotalWidth float32

	// NeedsHScroll is true when the container should scroll horizontally
	// instead of compressing columns below their minimums.
	NeedsHScroll bool
}

// ColumnWidths allocates widths for one table's columns. It is owned by a
// single table view and must only be used from the UI event loop.
type ColumnWidths struct {
	order []string
	cols  map[string]*column
	opts  Options

	available      float32
	manualOverflow bool
	minTotal       float32
	hscroll        bool

	// recalculating guards against a width callback synchronously
	// re-triggering recalculation.
	recalculating bool

	onWidth  func(name string, width float32)
	onLayout func(LayoutInfo)
}

// NewColumnWidths builds an engine for the given ordered column registry.
func NewColumnWidths(specs []ColumnSpec, opts Options) *ColumnWidths {
	if opts.EdgePadding < 0 {
		opts.EdgePadding = 0
	}
	if opts.OverflowHysteresis < 0 {
		opts.OverflowHysteresis = 0
	}

	cw := &ColumnWidths{
		cols: make(map[string]*column, len(specs)),
		opts: opts,
	}
	for _, spec := range specs {
		if _, dup := cw.cols[spec.Name]; dup {
			zap.S().Warnw("duplicate column in registry, ignoring", "column", spec.Name)
			continue
		}
		cw.order = append(cw.order, spec.Name)
		cw.cols[spec.Name] = newColumn(spec)
	}
	return cw
}

// SetCallbacks sets the width sink and the batched layout summary sink.
// Either may be nil.
func (cw *ColumnWidths) SetCallbacks(onWidth func(name string, width float32), onLayout func(LayoutInfo)) {
	cw.onWidth = onWidth
	cw.onLayout = onLayout
}

// Width returns the current width of the named column, or 0 if unknown.
func (cw *ColumnWidths) Width(name string) float32 {
	if c, ok := cw.cols[name]; ok {
		return c.width
	}
	return 0
}

// Columns returns the registry's display order.
func (cw *ColumnWidths) Columns() []string {
	out := make([]string, len(cw.order))
	copy(out, cw.order)
	return out
}

// VisibleColumns returns the names of currently visible columns in display order.
func (cw *ColumnWidths) VisibleColumns() []string {
	var out []string
	for _, name := range cw.order {
		if cw.cols[name].visible {
			out = append(out, name)
		}
	}
	return out
}

// IsVisible reports whether the named column is currently shown.
func (cw *ColumnWidths) IsVisible(name string) bool {
	c, ok := cw.cols[name]
	return ok && c.visible
}

// IsFixed reports whether the named column has a constant width.
func (cw *ColumnWidths) IsFixed(name string) bool {
	c, ok := cw.cols[name]
	return ok && c.spec.Fixed
}

// MinTotalWidth returns the last published minimum content width.
func (cw *ColumnWidths) MinTotalWidth() float32 { return cw.minTotal }

// NeedsHScroll returns the last published horizontal-scroll state.
func (cw *ColumnWidths) NeedsHScroll() bool { return cw.hscroll }

// SetAvailableWidth records the container's horizontal space and relays out.
// Sub-pixel changes are ignored; while a manual overflow is latched the
// current widths are preserved until the container grows past the total by
// the hysteresis margin.
func (cw *ColumnWidths) SetAvailableWidth(width float32) {
	if math32.Abs(width-cw.available) < availableEpsilon {
		return
	}

	if cw.manualOverflow {
		total := cw.visibleTotal() + cw.opts.EdgePadding
		if width < total+cw.opts.OverflowHysteresis {
			cw.available = width
			cw.publishLayout(total, true)
			return
		}
		cw.manualOverflow = false
	}

	cw.available = width
	cw.recalculate()
}

// SetColumnVisible toggles a column and relays out. Unknown names are ignored.
func (cw *ColumnWidths) SetColumnVisible(name string, visible bool) {
	c, ok := cw.cols[name]
	if !ok {
		zap.S().Debugw("visibility toggle for unknown column", "column", name)
		return
	}
	if c.visible == visible {
		return
	}
	c.visible = visible
	cw.recalculate()
}

// ResizeColumn applies one drag tick to the named column. delta is the
// incremental pixel movement since the previous tick. Growing a column
// reclaims width from the columns to its right, proportionally to their
// current widths, never below their minimums; once nothing to the right can
// give way the table overflows and the manual-overflow latch is set.
func (cw *ColumnWidths) ResizeColumn(name string, delta float32) {
	c, ok := cw.cols[name]
	if !ok || !c.visible || c.spec.Fixed {
		return
	}
	if math32.Abs(delta) < resizeEpsilon {
		return
	}

	newWidth := c.clamp(c.width + delta)
	actual := newWidth - c.width
	if math32.Abs(actual) < resizeEpsilon {
		return
	}

	inner := cw.available - cw.opts.EdgePadding
	totalBefore := cw.visibleTotal()
	if totalBefore+actual > inner {
		// The user is deliberately growing the table past the viewport.
		cw.manualOverflow = true
	}

	cw.applyWidth(c, newWidth)

	extra := math32.Max(0, inner-totalBefore)
	if shrink := math32.Max(0, actual-extra); shrink >= resizeEpsilon {
		cw.shrinkRightOf(name, shrink)
	}

	cw.updateScrollState()
}

// AutoSizeColumn sets the column to its widest registered content width, or
// its preferred width when nothing has been registered, reusing the resize
// redistribution path.
func (cw *ColumnWidths) AutoSizeColumn(name string) {
	c, ok := cw.cols[name]
	if !ok || !c.visible || c.spec.Fixed {
		return
	}

	target := c.spec.Preferred
	if c.content > 0 {
		target = c.content
	}
	target = c.clamp(target)

	if delta := target - c.width; math32.Abs(delta) >= resizeEpsilon {
		cw.ResizeColumn(name, delta)
	}
}

// RegisterContentWidth records how wide a rendered cell in the column needs
// to be. Only the running maximum is kept; it biases AutoSizeColumn toward
// real content instead of the static preferred width.
func (cw *ColumnWidths) RegisterContentWidth(name string, width float32) {
	c, ok := cw.cols[name]
	if !ok {
		return
	}
	c.content = math32.Max(c.content, width)
}

// shrinkRightOf reclaims need pixels from the visible non-fixed columns after
// the named column in display order. Shrink is proportional to each column's
// current width and repeated because pinning one column at its minimum
// changes the pool for the rest.
func (cw *ColumnWidths) shrinkRightOf(name string, need float32) {
	var pool []*column
	seen := false
	for _, n := range cw.order {
		if n == name {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		c := cw.cols[n]
		if c.visible && !c.spec.Fixed {
			pool = append(pool, c)
		}
	}

	for pass := 0; pass < maxShrinkPasses && need >= resizeEpsilon; pass++ {
		var shrinkable []*column
		poolWidth := float32(0)
		for _, c := range pool {
			if c.slack() > 0 {
				shrinkable = append(shrinkable, c)
				poolWidth += c.width
			}
		}
		if len(shrinkable) == 0 || poolWidth <= 0 {
			break
		}

		applied := float32(0)
		for _, c := range shrinkable {
			target := need * (c.width / poolWidth)
			shrink := math32.Min(target, c.slack())
			if shrink <= 0 {
				continue
			}
			cw.applyWidth(c, c.width-shrink)
			applied += shrink
		}
		if applied < resizeEpsilon {
			break
		}
		need -= applied
	}
}

// recalculate performs a full proportional layout over the visible columns.
func (cw *ColumnWidths) recalculate() {
	if cw.recalculating {
		return
	}
	cw.recalculating = true
	defer func() { cw.recalculating = false }()

	var visible []*column
	for _, name := range cw.order {
		if c := cw.cols[name]; c.visible {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return
	}

	minTotal := cw.opts.EdgePadding
	for _, c := range visible {
		minTotal += c.minOrFixed()
	}

	if cw.manualOverflow {
		total := cw.visibleTotal() + cw.opts.EdgePadding
		if cw.available < total+cw.opts.OverflowHysteresis {
			cw.publishLayout(total, true)
			return
		}
		cw.manualOverflow = false
	}

	cw.hscroll = cw.available < minTotal
	cw.minTotal = minTotal

	if cw.hscroll {
		// Narrowest legal layout; the container scrolls horizontally.
		for _, c := range visible {
			cw.applyWidth(c, c.minOrFixed())
		}
		cw.publishLayout(minTotal, true)
		return
	}

	fixedTotal := float32(0)
	totalStars := float32(0)
	for _, c := range visible {
		if c.spec.Fixed {
			fixedTotal += c.spec.FixedWidth
		} else {
			totalStars += c.spec.Star
		}
	}

	availableForProportional := math32.Max(proportionalFloor, cw.available-fixedTotal-cw.opts.EdgePadding)
	widthPerStar := float32(0)
	if totalStars > 0 {
		widthPerStar = availableForProportional / totalStars
	}

	for _, c := range visible {
		if c.spec.Fixed {
			cw.applyWidth(c, c.spec.FixedWidth)
			continue
		}
		cw.applyWidth(c, c.clamp(c.spec.Star*widthPerStar))
	}

	cw.publishLayout(minTotal, false)
}

// updateScrollState republishes overflow state after a resize.
func (cw *ColumnWidths) updateScrollState() {
	total := cw.visibleTotal() + cw.opts.EdgePadding
	if total > cw.available {
		cw.hscroll = true
		cw.minTotal = total
	} else {
		cw.hscroll = false
		minTotal := cw.opts.EdgePadding
		for _, name := range cw.order {
			if c := cw.cols[name]; c.visible {
				minTotal += c.minOrFixed()
			}
		}
		cw.minTotal = minTotal
	}
	cw.publishLayout(cw.minTotal, cw.hscroll)
}

// visibleTotal sums the current widths of visible columns, without padding.
func (cw *ColumnWidths) visibleTotal() float32 {
	total := float32(0)
	for _, name := range cw.order {
		if c := cw.cols[name]; c.visible {
			total += c.width
		}
	}
	return total
}

// applyWidth stores the width and notifies the sink when it visibly changed.
func (cw *ColumnWidths) applyWidth(c *column, width float32) {
	changed := math32.Abs(width-c.width) > publishEpsilon
	c.width = width
	if changed && cw.onWidth != nil {
		cw.onWidth(c.spec.Name, width)
	}
}

func (cw *ColumnWidths) publishLayout(minTotal float32, hscroll bool) {
	cw.minTotal = minTotal
	cw.hscroll = hscroll
	if cw.onLayout != nil {
		cw.onLayout(LayoutInfo{MinTotalWidth: minTotal, NeedsHScroll: hscroll})
	}
}
