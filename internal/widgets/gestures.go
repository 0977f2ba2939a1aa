package widgets

import (
	"time"

	"fyne.io/fyne/v2"
)

// SwipeDirection identifies the dominant direction of a touch swipe.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// Swipe detection thresholds
const (
	SwipeThreshold    float32 = 50
	SwipeMaxDuration          = 600 * time.Millisecond
)

// swipeTracker turns raw touch down/up positions into swipe directions.
// Used by touch-capable widgets such as the date picker's month navigation.
type swipeTracker struct {
	start     fyne.Position
	startTime time.Time
}

func (st *swipeTracker) begin(pos fyne.Position) {
	st.start = pos
	st.startTime = time.Now()
}

func (st *swipeTracker) cancel() {
	st.startTime = time.Time{}
}

// end classifies the gesture that finished at pos.
func (st *swipeTracker) end(pos fyne.Position) SwipeDirection {
	if st.startTime.IsZero() || time.Since(st.startTime) > SwipeMaxDuration {
		return SwipeNone
	}

	dx := pos.X - st.start.X
	dy := pos.Y - st.start.Y
	absDx, absDy := abs(dx), abs(dy)

	if absDx < SwipeThreshold && absDy < SwipeThreshold {
		return SwipeNone
	}

	if absDx > absDy {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
