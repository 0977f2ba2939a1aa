package layout

// Package layout computes table column widths. It distributes available
// horizontal space across a fixed registry of columns by star weight,
// supports interactive drag-resize with redistribution to the columns on
// the right, and falls back to a horizontal-scroll layout when the
// container is narrower than the combined column minimums.
