package widgets

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModalOptions controls how a modal overlay behaves.
type ModalOptions struct {
	// DismissOnEscape closes the modal when the Escape key is typed.
	DismissOnEscape bool

	// DismissOnTapOutside closes the modal when the backdrop is tapped.
	DismissOnTapOutside bool

	// Width and Height size the modal; zero values use the content's
	// minimum size.
	Width, Height float32

	// FocusOnShow receives keyboard focus once the modal is up.
	FocusOnShow fyne.Focusable

	// OnDismiss runs after the modal is removed, however it was closed.
	OnDismiss func()
}

// modalInstance is one presented overlay.
type modalInstance struct {
	id        string
	overlay   fyne.CanvasObject
	escape    bool
	onDismiss func()
}

// ModalHost owns the modal overlay stack of one window: a dimmed backdrop
// with centered content per instance, Escape/backdrop-tap dismissal per the
// instance's options. Dismissing is idempotent: a late Dismiss with a stale
// ID is a no-op.
type ModalHost struct {
	window fyne.Window
	stack  []*modalInstance

	prevKeyHandler func(*fyne.KeyEvent)
}

// NewModalHost creates the overlay manager for a window.
func NewModalHost(window fyne.Window) *ModalHost {
	return &ModalHost{window: window}
}

// Present shows content as a modal overlay and returns its instance ID.
func (h *ModalHost) Present(content fyne.CanvasObject, opts ModalOptions) string {
	inst := &modalInstance{
		id:        uuid.NewString(),
		escape:    opts.DismissOnEscape,
		onDismiss: opts.OnDismiss,
	}

	size := content.MinSize()
	if opts.Width > 0 {
		size.Width = opts.Width
	}
	if opts.Height > 0 {
		size.Height = opts.Height
	}

	backdrop := newModalBackdrop()
	if opts.DismissOnTapOutside {
		id := inst.id
		backdrop.onTap = func() { h.Dismiss(id) }
	}

	cnv := h.window.Canvas()
	inst.overlay = container.NewStack(
		backdrop,
		container.NewCenter(container.NewGridWrap(size, content)),
	)
	inst.overlay.Resize(cnv.Size())

	if len(h.stack) == 0 {
		h.captureEscape()
	}
	h.stack = append(h.stack, inst)

	cnv.Overlays().Add(inst.overlay)
	if opts.FocusOnShow != nil {
		cnv.Focus(opts.FocusOnShow)
	}
	return inst.id
}

// Dismiss hides the overlay with the given ID. Unknown IDs are ignored.
func (h *ModalHost) Dismiss(id string) {
	for i, inst := range h.stack {
		if inst.id != id {
			continue
		}
		h.stack = append(h.stack[:i], h.stack[i+1:]...)
		h.window.Canvas().Overlays().Remove(inst.overlay)
		if len(h.stack) == 0 {
			h.releaseEscape()
		}
		if inst.onDismiss != nil {
			inst.onDismiss()
		}
		return
	}
	zap.S().Debugw("dismiss for unknown modal", "id", id)
}

// DismissTop closes the most recent overlay. Returns false when none is open.
func (h *ModalHost) DismissTop() bool {
	if len(h.stack) == 0 {
		return false
	}
	h.Dismiss(h.stack[len(h.stack)-1].id)
	return true
}

// Depth returns the number of open overlays.
func (h *ModalHost) Depth() int {
	return len(h.stack)
}

// ShowToast shows an auto-hiding notification in the top-right corner.
func (h *ModalHost) ShowToast(message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, label)

	toast = widget.NewPopUp(content, h.window.Canvas())
	size := fyne.NewSize(ToastWidth, ToastHeight)
	canvasSize := h.window.Canvas().Size()
	toast.Resize(size)
	toast.ShowAtPosition(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}

// captureEscape hooks the window's key handler so Escape closes the top
// overlay (when that overlay allows it) while any modal is open.
func (h *ModalHost) captureEscape() {
	h.prevKeyHandler = h.window.Canvas().OnTypedKey()
	h.window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyEscape && len(h.stack) > 0 {
			if top := h.stack[len(h.stack)-1]; top.escape {
				h.Dismiss(top.id)
			}
			return
		}
		if h.prevKeyHandler != nil {
			h.prevKeyHandler(e)
		}
	})
}

func (h *ModalHost) releaseEscape() {
	h.window.Canvas().SetOnTypedKey(h.prevKeyHandler)
	h.prevKeyHandler = nil
}

// modalBackdrop dims everything behind the modal and swallows input. A tap
// dismisses the modal when the instance allows it.
type modalBackdrop struct {
	widget.BaseWidget

	rect  *canvas.Rectangle
	onTap func()
}

func newModalBackdrop() *modalBackdrop {
	b := &modalBackdrop{
		rect: canvas.NewRectangle(color.NRGBA{A: ModalBackdropOpacity}),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *modalBackdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.rect)
}

// Tapped implements fyne.Tappable.
func (b *modalBackdrop) Tapped(*fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}
