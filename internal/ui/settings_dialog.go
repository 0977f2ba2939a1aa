package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ledgerdesk/ledgerdesk/internal/config"
	"github.com/ledgerdesk/ledgerdesk/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	exportDirEntry *widget.Entry
	densitySelect  *widget.Select
	dateFormatSel  *widget.Select
	countrySelect  *widget.Select
	overridesEntry *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// user confirms, so the shell can re-apply language and layout changes.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Export directory selection
	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder(text(KeyExportDirectory))

	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	// Density preset selection
	densityOptions := []string{}
	for _, preset := range sd.settings.GetDensityPresetOptions() {
		densityOptions = append(densityOptions, string(preset))
	}
	sd.densitySelect = widget.NewSelect(densityOptions, nil)

	// Date format selection
	sd.dateFormatSel = widget.NewSelect([]string{"2006-01-02", "02.01.2006", "01/02/2006"}, nil)

	// Default phone country
	countryOptions := []string{}
	for _, c := range model.Countries() {
		countryOptions = append(countryOptions, c.Code)
	}
	sd.countrySelect = widget.NewSelect(countryOptions, nil)

	// Column layout overrides file
	sd.overridesEntry = widget.NewEntry()
	sd.overridesEntry.SetPlaceHolder("layout.yaml")

	// Language selection
	languageOptions := []string{"system"}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyExportDirectory)+":"),
		exportDirRow,

		widget.NewLabel(text(KeyDensity)+":"),
		sd.densitySelect,

		widget.NewLabel(text(KeyDateFormat)+":"),
		sd.dateFormatSel,

		widget.NewLabel(text(KeyDefaultCountry)+":"),
		sd.countrySelect,

		widget.NewLabel(text(KeyLayoutOverrides)+":"),
		sd.overridesEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsFormWidth, SettingsFormHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.densitySelect.SetSelected(string(sd.settings.GetDensityPreset()))
	sd.dateFormatSel.SetSelected(sd.settings.GetDateFormat())
	sd.countrySelect.SetSelected(sd.settings.GetDefaultCountry())
	sd.overridesEntry.SetText(sd.settings.GetLayoutOverridesPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	if sd.densitySelect.Selected != "" {
		sd.settings.SetDensityPreset(config.DensityPreset(sd.densitySelect.Selected))
	}
	if sd.dateFormatSel.Selected != "" {
		sd.settings.SetDateFormat(sd.dateFormatSel.Selected)
	}
	if sd.countrySelect.Selected != "" {
		sd.settings.SetDefaultCountry(sd.countrySelect.Selected)
	}
	// Empty is valid here: it clears the overrides file.
	sd.settings.SetLayoutOverridesPath(sd.overridesEntry.Text)
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
