package widgets

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// Weeks start on Monday, matching the bookkeeping calendar.
var weekdayCaptions = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DatePicker is a month-grid calendar control. Arrow buttons (or horizontal
// swipes on touch devices) navigate months; tapping a day selects it.
type DatePicker struct {
	widget.BaseWidget

	view     time.Time // first day of the displayed month
	selected time.Time // zero when nothing is selected
	minDate  time.Time // zero means unbounded
	maxDate  time.Time

	monthLabel *widget.Label
	grid       *fyne.Container
	content    *fyne.Container

	swipe swipeTracker

	onSelected func(time.Time)
}

// NewDatePicker creates a picker showing the current month.
func NewDatePicker() *DatePicker {
	p := &DatePicker{}
	p.view = monthStart(time.Now())
	p.ExtendBaseWidget(p)
	p.createUI()
	return p
}

// SetCallbacks sets the selection callback. It may be nil.
func (p *DatePicker) SetCallbacks(onSelected func(time.Time)) {
	p.onSelected = onSelected
}

// Date returns the selected date, or a zero time when nothing is selected.
func (p *DatePicker) Date() time.Time {
	return p.selected
}

// SetDate selects a date and shows its month.
func (p *DatePicker) SetDate(t time.Time) {
	p.selected = dateOnly(t)
	p.view = monthStart(t)
	p.rebuild()
}

// SetBounds restricts the selectable range. Zero values mean unbounded.
func (p *DatePicker) SetBounds(min, max time.Time) {
	p.minDate = dateOnly(min)
	p.maxDate = dateOnly(max)
	p.rebuild()
}

// ShowMonth navigates to the month containing t without changing the selection.
func (p *DatePicker) ShowMonth(t time.Time) {
	p.view = monthStart(t)
	p.rebuild()
}

// CreateRenderer implements fyne.Widget.
func (p *DatePicker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// TouchDown implements mobile.Touchable for swipe month navigation.
func (p *DatePicker) TouchDown(e *mobile.TouchEvent) {
	p.swipe.begin(e.Position)
}

// TouchUp completes a swipe: left shows the next month, right the previous.
func (p *DatePicker) TouchUp(e *mobile.TouchEvent) {
	switch p.swipe.end(e.Position) {
	case SwipeLeft:
		p.ShowMonth(p.view.AddDate(0, 1, 0))
	case SwipeRight:
		p.ShowMonth(p.view.AddDate(0, -1, 0))
	}
}

// TouchCancel implements mobile.Touchable.
func (p *DatePicker) TouchCancel(*mobile.TouchEvent) {
	p.swipe.cancel()
}

func (p *DatePicker) createUI() {
	p.monthLabel = widget.NewLabel("")
	p.monthLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.monthLabel.Alignment = fyne.TextAlignCenter

	prev := widget.NewButton("‹", func() { p.ShowMonth(p.view.AddDate(0, -1, 0)) })
	next := widget.NewButton("›", func() { p.ShowMonth(p.view.AddDate(0, 1, 0)) })
	today := widget.NewButton("Today", func() {
		now := time.Now()
		p.selectDay(dateOnly(now))
		p.ShowMonth(now)
	})

	header := container.NewBorder(nil, nil, prev, next, p.monthLabel)

	weekdays := container.NewGridWithColumns(CalendarGridCols)
	for _, caption := range weekdayCaptions {
		lbl := widget.NewLabel(caption)
		lbl.Alignment = fyne.TextAlignCenter
		weekdays.Add(lbl)
	}

	p.grid = container.NewGridWithColumns(CalendarGridCols)
	p.content = container.NewVBox(header, weekdays, p.grid, container.NewCenter(today))
	p.rebuild()
}

// rebuild repopulates the day grid for the current view month.
func (p *DatePicker) rebuild() {
	p.monthLabel.SetText(p.view.Format("January 2006"))
	p.grid.RemoveAll()

	// Leading blanks up to the weekday of the 1st, Monday-based.
	lead := (int(p.view.Weekday()) + 6) % 7
	for i := 0; i < lead; i++ {
		p.grid.Add(widget.NewLabel(""))
	}

	days := p.view.AddDate(0, 1, -1).Day()
	for day := 1; day <= days; day++ {
		date := p.view.AddDate(0, 0, day-1)
		p.grid.Add(p.dayButton(date))
	}

	// Trailing blanks keep the grid a stable six rows high.
	for len(p.grid.Objects) < CalendarGridCols*CalendarGridRows {
		p.grid.Add(widget.NewLabel(""))
	}
	p.grid.Refresh()
}

func (p *DatePicker) dayButton(date time.Time) fyne.CanvasObject {
	btn := widget.NewButton(date.Format("2"), func() { p.selectDay(date) })

	switch {
	case !p.inBounds(date):
		btn.Disable()
	case date.Equal(p.selected):
		btn.Importance = widget.HighImportance
	case date.Equal(dateOnly(time.Now())):
		btn.Importance = widget.MediumImportance
	default:
		btn.Importance = widget.LowImportance
	}
	return btn
}

func (p *DatePicker) selectDay(date time.Time) {
	if !p.inBounds(date) {
		return
	}
	p.selected = date
	p.rebuild()
	if p.onSelected != nil {
		p.onSelected(date)
	}
}

func (p *DatePicker) inBounds(date time.Time) bool {
	if !p.minDate.IsZero() && date.Before(p.minDate) {
		return false
	}
	if !p.maxDate.IsZero() && date.After(p.maxDate) {
		return false
	}
	return true
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
