package widgets

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModalWindow() (fyne.Window, *ModalHost) {
	app := test.NewApp()
	w := app.NewWindow("test")
	w.Resize(fyne.NewSize(800, 600))
	return w, NewModalHost(w)
}

func TestModalHost_PresentAndDismiss(t *testing.T) {
	w, host := newModalWindow()

	dismissed := false
	id := host.Present(widget.NewLabel("hello"), ModalOptions{
		OnDismiss: func() { dismissed = true },
	})

	require.NotEmpty(t, id)
	assert.Equal(t, 1, host.Depth())
	assert.Len(t, w.Canvas().Overlays().List(), 1)

	host.Dismiss(id)

	assert.True(t, dismissed)
	assert.Equal(t, 0, host.Depth())
	assert.Empty(t, w.Canvas().Overlays().List())
}

func TestModalHost_DismissUnknownIDIgnored(t *testing.T) {
	_, host := newModalWindow()

	id := host.Present(widget.NewLabel("hello"), ModalOptions{})
	host.Dismiss("not-a-modal")
	assert.Equal(t, 1, host.Depth())

	host.Dismiss(id)
	host.Dismiss(id) // stale second dismiss
	assert.Equal(t, 0, host.Depth())
}

func TestModalHost_StackedDismissTop(t *testing.T) {
	_, host := newModalWindow()

	first := host.Present(widget.NewLabel("first"), ModalOptions{})
	host.Present(widget.NewLabel("second"), ModalOptions{})
	require.Equal(t, 2, host.Depth())

	assert.True(t, host.DismissTop())
	assert.Equal(t, 1, host.Depth())
	assert.Equal(t, first, host.stack[0].id, "the first modal remains")

	assert.True(t, host.DismissTop())
	assert.False(t, host.DismissTop(), "empty stack")
}

func TestModalHost_EscapeDismissesTopOnly(t *testing.T) {
	w, host := newModalWindow()

	host.Present(widget.NewLabel("first"), ModalOptions{DismissOnEscape: true})
	host.Present(widget.NewLabel("second"), ModalOptions{DismissOnEscape: true})

	handler := w.Canvas().OnTypedKey()
	require.NotNil(t, handler)

	handler(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, host.Depth())

	handler(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 0, host.Depth())
}

func TestModalHost_EscapePolicyPerInstance(t *testing.T) {
	w, host := newModalWindow()

	host.Present(widget.NewLabel("pinned"), ModalOptions{DismissOnEscape: false})

	handler := w.Canvas().OnTypedKey()
	require.NotNil(t, handler)

	handler(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, 1, host.Depth(), "modal without escape dismissal stays open")
}

func TestModalHost_TapOutside(t *testing.T) {
	_, host := newModalWindow()

	host.Present(widget.NewLabel("closable"), ModalOptions{DismissOnTapOutside: true})
	require.Equal(t, 1, host.Depth())

	backdrop := host.stack[0].overlay.(*fyne.Container).Objects[0].(*modalBackdrop)
	backdrop.Tapped(&fyne.PointEvent{})

	assert.Equal(t, 0, host.Depth())
}

func TestModalHost_TapOutsideDisabled(t *testing.T) {
	_, host := newModalWindow()

	host.Present(widget.NewLabel("pinned"), ModalOptions{DismissOnTapOutside: false})

	backdrop := host.stack[0].overlay.(*fyne.Container).Objects[0].(*modalBackdrop)
	backdrop.Tapped(&fyne.PointEvent{})

	assert.Equal(t, 1, host.Depth())
}

func TestModalHost_KeyHandlerRestored(t *testing.T) {
	w, host := newModalWindow()

	var forwarded fyne.KeyName
	w.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) { forwarded = e.Name })

	id := host.Present(widget.NewLabel("hello"), ModalOptions{DismissOnEscape: true})

	// Non-escape keys pass through to the previous handler while open.
	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEnter})
	assert.Equal(t, fyne.KeyEnter, forwarded)

	host.Dismiss(id)

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, fyne.KeySpace, forwarded, "original handler restored after the last modal closes")
}
