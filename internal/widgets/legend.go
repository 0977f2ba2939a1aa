package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LegendEntry is one series of the legend.
type LegendEntry struct {
	ID    string
	Label string
	Value string // optional amount/count shown after the label
	Color color.Color
}

// ChartLegend lists chart series with color swatches. Tapping an entry
// toggles that series' visibility and notifies the chart through a callback.
type ChartLegend struct {
	widget.BaseWidget

	entries []LegendEntry
	hidden  map[string]bool

	content *fyne.Container

	onToggle func(id string, visible bool)
}

// NewChartLegend creates a legend for the given series.
func NewChartLegend(entries []LegendEntry) *ChartLegend {
	l := &ChartLegend{
		entries: entries,
		hidden:  make(map[string]bool),
		content: container.NewHBox(),
	}
	l.ExtendBaseWidget(l)
	l.rebuild()
	return l
}

// SetCallbacks sets the series-visibility callback. It may be nil.
func (l *ChartLegend) SetCallbacks(onToggle func(id string, visible bool)) {
	l.onToggle = onToggle
}

// IsSeriesVisible reports whether a series is currently shown.
func (l *ChartLegend) IsSeriesVisible(id string) bool {
	return !l.hidden[id]
}

// Toggle flips one series' visibility.
func (l *ChartLegend) Toggle(id string) {
	l.hidden[id] = !l.hidden[id]
	l.rebuild()
	if l.onToggle != nil {
		l.onToggle(id, !l.hidden[id])
	}
}

// SetValue updates the value caption of one entry.
func (l *ChartLegend) SetValue(id, value string) {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Value = value
			l.rebuild()
			return
		}
	}
}

// CreateRenderer implements fyne.Widget.
func (l *ChartLegend) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.content)
}

func (l *ChartLegend) rebuild() {
	l.content.RemoveAll()
	for _, entry := range l.entries {
		l.content.Add(newLegendItem(entry, !l.hidden[entry.ID], l.Toggle))
	}
	l.content.Refresh()
}

// legendItem is one tappable swatch+label pair.
type legendItem struct {
	widget.BaseWidget

	entry   LegendEntry
	visible bool
	onTap   func(id string)
}

func newLegendItem(entry LegendEntry, visible bool, onTap func(id string)) *legendItem {
	item := &legendItem{entry: entry, visible: visible, onTap: onTap}
	item.ExtendBaseWidget(item)
	return item
}

func (li *legendItem) CreateRenderer() fyne.WidgetRenderer {
	swatchColor := li.entry.Color
	if !li.visible {
		swatchColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	swatch := canvas.NewRectangle(swatchColor)
	swatch.SetMinSize(fyne.NewSize(LegendSwatchSize, LegendSwatchSize))

	caption := li.entry.Label
	if li.entry.Value != "" {
		caption += ": " + li.entry.Value
	}
	label := widget.NewLabel(caption)
	if !li.visible {
		label.TextStyle = fyne.TextStyle{Italic: true}
	}

	return widget.NewSimpleRenderer(container.NewHBox(container.NewCenter(swatch), label))
}

// Tapped toggles the series.
func (li *legendItem) Tapped(*fyne.PointEvent) {
	if li.onTap != nil {
		li.onTap(li.entry.ID)
	}
}
