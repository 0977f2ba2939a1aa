package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ledgerdesk.png"
)

// LoadLogoResource loads the application logo from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
