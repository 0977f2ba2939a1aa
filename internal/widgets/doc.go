package widgets

// Package widgets contains the reusable Fyne controls of the application:
// the data table with resizable columns, the date picker, the phone entry,
// modal overlays and toasts, the navigation sidebar, and the chart legend.
// Widgets publish user actions through callback setters and hold no business
// state.
