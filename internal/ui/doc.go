package ui

// Package ui contains the Fyne-based desktop shell: the navigation sidebar,
// the table-bearing pages, settings, and notifications. All UI strings are
// localized via Localization.
