package widgets

import (
	"encoding/csv"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ledgerdesk/ledgerdesk/internal/layout"
)

// DataTable is a table widget with proportionally sized, drag-resizable
// columns. Column sizing is delegated to a layout.ColumnWidths engine built
// from the registry passed at construction; the widget feeds the engine its
// own width, drag deltas, and measured cell content, and pushes the computed
// widths into the underlying widget.Table.
type DataTable struct {
	widget.BaseWidget

	widths  *layout.ColumnWidths
	titles  map[string]string
	visible []string

	rowCount func() int
	cellText func(row int, column string) string

	table *widget.Table

	sortColumn string
	sortAsc    bool

	// Callbacks
	onSelectRow func(row int)
	onSort      func(column string, ascending bool)
	onLayout    func(layout.LayoutInfo)
}

// NewDataTable creates a data table over the given column registry. titles
// maps column names to header captions (missing entries fall back to the
// name); rowCount and cellText supply the display data.
func NewDataTable(specs []layout.ColumnSpec, titles map[string]string, rowCount func() int, cellText func(row int, column string) string) *DataTable {
	d := &DataTable{
		widths:   layout.NewColumnWidths(specs, layout.DefaultOptions()),
		titles:   titles,
		rowCount: rowCount,
		cellText: cellText,
	}
	d.visible = d.widths.VisibleColumns()
	d.ExtendBaseWidget(d)
	d.createTable()

	d.widths.SetCallbacks(
		func(name string, width float32) {
			if i := d.columnIndex(name); i >= 0 {
				d.table.SetColumnWidth(i, width)
			}
		},
		func(li layout.LayoutInfo) {
			if d.onLayout != nil {
				d.onLayout(li)
			}
		},
	)
	return d
}

// SetCallbacks sets the row-selection, sort, and layout-state callbacks.
// Any of them may be nil.
func (d *DataTable) SetCallbacks(onSelectRow func(row int), onSort func(column string, ascending bool), onLayout func(layout.LayoutInfo)) {
	d.onSelectRow = onSelectRow
	d.onSort = onSort
	d.onLayout = onLayout
}

// Widths exposes the column width engine, mainly for tests and for pages
// that persist or inspect layout state.
func (d *DataTable) Widths() *layout.ColumnWidths {
	return d.widths
}

// VisibleColumns returns the currently shown columns in display order.
func (d *DataTable) VisibleColumns() []string {
	return d.widths.VisibleColumns()
}

// SetColumnVisible shows or hides a column and re-layouts the table.
// refreshColumns re-pushes every width afterwards, which corrects any pushes
// the recalculation made against the previous column indices.
func (d *DataTable) SetColumnVisible(name string, visible bool) {
	d.widths.SetColumnVisible(name, visible)
	d.refreshColumns()
}

// Refresh re-renders the table after the underlying data changed.
func (d *DataTable) Refresh() {
	d.table.Refresh()
	d.BaseWidget.Refresh()
}

// Resize feeds the new container width to the width engine before the usual
// widget resize.
func (d *DataTable) Resize(size fyne.Size) {
	d.widths.SetAvailableWidth(size.Width)
	d.BaseWidget.Resize(size)
}

// CreateRenderer implements fyne.Widget.
func (d *DataTable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.table)
}

// MinSize keeps the table usable inside scroll containers.
func (d *DataTable) MinSize() fyne.Size {
	return fyne.NewSize(d.widths.MinTotalWidth(), TableMinHeight)
}

// ExportCSV writes the visible columns of every row to w.
func (d *DataTable) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(d.visible))
	for i, name := range d.visible {
		header[i] = d.title(name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows := d.rowCount()
	record := make([]string, len(d.visible))
	for r := 0; r < rows; r++ {
		for i, name := range d.visible {
			record[i] = d.cellText(r, name)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// createTable builds the underlying widget.Table with a resizable header row.
func (d *DataTable) createTable() {
	d.table = widget.NewTable(
		func() (int, int) {
			return d.rowCount(), len(d.visible)
		},
		func() fyne.CanvasObject {
			lbl := widget.NewLabel("")
			lbl.Truncation = fyne.TextTruncateEllipsis
			return lbl
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Col < 0 || id.Col >= len(d.visible) {
				lbl.SetText("")
				return
			}
			name := d.visible[id.Col]
			text := d.cellText(id.Row, name)
			lbl.SetText(text)

			// Report how wide this cell wants to be so double-click
			// auto-size can fit real content.
			measured := fyne.MeasureText(text, theme.TextSize(), fyne.TextStyle{})
			d.widths.RegisterContentWidth(name, measured.Width+CellContentPadding)
		},
	)

	d.table.ShowHeaderRow = true
	d.table.CreateHeader = func() fyne.CanvasObject {
		return newHeaderCell()
	}
	d.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		cell := o.(*headerCell)
		if id.Col < 0 || id.Col >= len(d.visible) {
			cell.clear()
			return
		}
		name := d.visible[id.Col]
		cell.update(d.headerCaption(name), !d.widths.IsFixed(name))
		cell.onTap = func() { d.handleSort(name) }
		cell.handle.onDrag = func(dx float32) { d.widths.ResizeColumn(name, dx) }
		cell.handle.onDoubleTap = func() { d.widths.AutoSizeColumn(name) }
	}

	d.table.OnSelected = func(id widget.TableCellID) {
		if id.Row >= 0 && d.onSelectRow != nil {
			d.onSelectRow(id.Row)
		}
	}
}

// refreshColumns recomputes the visible column list and re-pushes widths.
func (d *DataTable) refreshColumns() {
	d.visible = d.widths.VisibleColumns()
	for i, name := range d.visible {
		d.table.SetColumnWidth(i, d.widths.Width(name))
	}
	d.table.Refresh()
}

func (d *DataTable) columnIndex(name string) int {
	for i, n := range d.visible {
		if n == name {
			return i
		}
	}
	return -1
}

func (d *DataTable) title(name string) string {
	if t, ok := d.titles[name]; ok {
		return t
	}
	return name
}

// headerCaption appends the sort indicator to the column title.
func (d *DataTable) headerCaption(name string) string {
	caption := d.title(name)
	if name != d.sortColumn {
		return caption
	}
	if d.sortAsc {
		return caption + " " + IconSortAsc
	}
	return caption + " " + IconSortDesc
}

// handleSort cycles the sort state for a column and notifies the page.
func (d *DataTable) handleSort(name string) {
	if d.onSort == nil || d.widths.IsFixed(name) {
		return
	}
	if d.sortColumn == name {
		d.sortAsc = !d.sortAsc
	} else {
		d.sortColumn = name
		d.sortAsc = true
	}
	d.onSort(name, d.sortAsc)
	d.table.Refresh()
}

// headerCell is one header caption plus its drag handle.
type headerCell struct {
	widget.BaseWidget

	label  *widget.Label
	handle *resizeHandle
	onTap  func()
}

func newHeaderCell() *headerCell {
	c := &headerCell{
		label:  widget.NewLabel(""),
		handle: newResizeHandle(),
	}
	c.label.TextStyle = fyne.TextStyle{Bold: true}
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

func (c *headerCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, c.handle, c.label))
}

// Tapped requests a sort on the column.
func (c *headerCell) Tapped(*fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap()
	}
}

func (c *headerCell) update(caption string, resizable bool) {
	c.label.SetText(caption)
	c.handle.setEnabled(resizable)
}

func (c *headerCell) clear() {
	c.label.SetText("")
	c.handle.setEnabled(false)
	c.onTap = nil
}

// resizeHandle is the thin draggable zone between column headers. Dragging
// resizes the column to its left; double-tapping auto-sizes it to content.
type resizeHandle struct {
	widget.BaseWidget

	line    *canvas.Rectangle
	enabled bool

	onDrag      func(dx float32)
	onDoubleTap func()
}

func newResizeHandle() *resizeHandle {
	h := &resizeHandle{
		line:    canvas.NewRectangle(theme.Color(theme.ColorNameSeparator)),
		enabled: true,
	}
	h.line.SetMinSize(fyne.NewSize(HandleWidth, 0))
	h.ExtendBaseWidget(h)
	return h
}

func (h *resizeHandle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(h.line)
}

func (h *resizeHandle) setEnabled(enabled bool) {
	h.enabled = enabled
}

// Dragged forwards the horizontal drag delta of this tick.
func (h *resizeHandle) Dragged(e *fyne.DragEvent) {
	if h.enabled && h.onDrag != nil {
		h.onDrag(e.Dragged.DX)
	}
}

// DragEnd implements fyne.Draggable.
func (h *resizeHandle) DragEnd() {}

// DoubleTapped auto-sizes the column to its content.
func (h *resizeHandle) DoubleTapped(*fyne.PointEvent) {
	if h.enabled && h.onDoubleTap != nil {
		h.onDoubleTap()
	}
}

// Cursor shows the horizontal resize cursor over the handle.
func (h *resizeHandle) Cursor() desktop.Cursor {
	if h.enabled {
		return desktop.HResizeCursor
	}
	return desktop.DefaultCursor
}
