package widgets

import "time"

// Widget-wide constants to avoid magic numbers scattered across the package.

// Indicator symbols
const (
	IconSortAsc  = "▲"
	IconSortDesc = "▼"
	IconClose    = "×"
	IconCollapse = "«"
	IconExpand   = "»"
)

// Data table sizing
const (
	// HandleWidth is the draggable hot zone at the right edge of a header cell.
	HandleWidth float32 = 8

	// CellContentPadding is added to measured text when registering content
	// widths, covering the cell's inner padding on both sides.
	CellContentPadding float32 = 24

	TableRowHeight  float32 = 32
	HeaderRowHeight float32 = 36
	TableMinHeight  float32 = 120
)

// Date picker sizing
const (
	CalendarCellSize float32 = 36
	CalendarGridCols         = 7
	CalendarGridRows         = 6
)

// Phone entry sizing
const (
	CountryButtonWidth float32 = 96
	CountrySearchLimit         = 8
)

// Modal / toast behavior
const (
	ModalBackdropOpacity uint8 = 128

	ToastWidth    float32 = 300
	ToastHeight   float32 = 80
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Sidebar sizing
const (
	SidebarWidth          float32 = 220
	SidebarCollapsedWidth float32 = 56
	SidebarCollapseBelow  float32 = 720
)

// Legend sizing
const (
	LegendSwatchSize float32 = 12
)
