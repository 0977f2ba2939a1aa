package widgets

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatePicker_SetDate(t *testing.T) {
	test.NewApp()
	p := NewDatePicker()

	var selected time.Time
	p.SetCallbacks(func(d time.Time) { selected = d })

	p.SetDate(date(2026, time.March, 15))

	assert.Equal(t, date(2026, time.March, 15), p.Date())
	assert.Equal(t, "March 2026", p.monthLabel.Text)
	assert.True(t, selected.IsZero(), "SetDate must not fire the callback")
}

func TestDatePicker_SelectDayFiresCallback(t *testing.T) {
	test.NewApp()
	p := NewDatePicker()
	p.ShowMonth(date(2026, time.March, 1))

	var selected time.Time
	p.SetCallbacks(func(d time.Time) { selected = d })

	p.selectDay(date(2026, time.March, 2))

	assert.Equal(t, date(2026, time.March, 2), selected)
	assert.Equal(t, selected, p.Date())
}

func TestDatePicker_MonthNavigation(t *testing.T) {
	test.NewApp()
	p := NewDatePicker()
	p.ShowMonth(date(2026, time.January, 20))

	assert.Equal(t, "January 2026", p.monthLabel.Text)

	p.ShowMonth(p.view.AddDate(0, 1, 0))
	assert.Equal(t, "February 2026", p.monthLabel.Text)

	p.ShowMonth(p.view.AddDate(0, -2, 0))
	assert.Equal(t, "December 2025", p.monthLabel.Text)
}

func TestDatePicker_Bounds(t *testing.T) {
	test.NewApp()
	p := NewDatePicker()
	p.ShowMonth(date(2026, time.March, 1))
	p.SetBounds(date(2026, time.March, 10), date(2026, time.March, 20))

	var selected time.Time
	p.SetCallbacks(func(d time.Time) { selected = d })

	p.selectDay(date(2026, time.March, 5)) // below minimum
	assert.True(t, selected.IsZero())

	p.selectDay(date(2026, time.March, 25)) // above maximum
	assert.True(t, selected.IsZero())

	p.selectDay(date(2026, time.March, 15))
	assert.Equal(t, date(2026, time.March, 15), selected)
}

func TestDatePicker_GridStableSize(t *testing.T) {
	test.NewApp()
	p := NewDatePicker()

	// Any month must pad the grid to six full weeks.
	for _, m := range []time.Time{
		date(2026, time.February, 1), // 28 days
		date(2026, time.March, 1),    // 31 days
		date(2027, time.May, 1),
	} {
		p.ShowMonth(m)
		assert.Len(t, p.grid.Objects, CalendarGridCols*CalendarGridRows, "month %s", m.Format("January 2006"))
	}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name     string
		from, to fyne.Position
		expected SwipeDirection
	}{
		{"left", fyne.NewPos(200, 100), fyne.NewPos(100, 110), SwipeLeft},
		{"right", fyne.NewPos(100, 100), fyne.NewPos(220, 90), SwipeRight},
		{"up", fyne.NewPos(100, 200), fyne.NewPos(110, 100), SwipeUp},
		{"down", fyne.NewPos(100, 100), fyne.NewPos(90, 230), SwipeDown},
		{"too short", fyne.NewPos(100, 100), fyne.NewPos(120, 110), SwipeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st swipeTracker
			st.begin(tt.from)
			assert.Equal(t, tt.expected, st.end(tt.to))
		})
	}
}

func TestSwipeTracker_CancelledGestureIgnored(t *testing.T) {
	var st swipeTracker
	st.begin(fyne.NewPos(200, 100))
	st.cancel()
	assert.Equal(t, SwipeNone, st.end(fyne.NewPos(0, 100)))
}
