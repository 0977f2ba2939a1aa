package config

import (
	"fyne.io/fyne/v2"

	"github.com/ledgerdesk/ledgerdesk/internal/platform"
)

// Density presets for the interface
type DensityPreset string

const (
	DensityCompact     DensityPreset = "compact"
	DensityComfortable DensityPreset = "comfortable"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyDensityPreset    = "density_preset"
	KeyDateFormat       = "date_format"
	KeyLanguage         = "app_language"
	KeyDefaultCountry   = "default_country"
	KeyLayoutOverrides  = "layout_overrides_path"
	KeyAutoRevealExport = "auto_reveal_on_export"
	KeyWindowWidth      = "window_width"
	KeyWindowHeight     = "window_height"
)

// Default values
const (
	DefaultDensityPreset    = DensityCompact
	DefaultDateFormat       = "2006-01-02"
	DefaultLanguage         = "system"
	DefaultCountry          = "US"
	DefaultAutoRevealExport = true
	DefaultWindowWidth      = 1100
	DefaultWindowHeight     = 700
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory CSV exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			defaultDir = "/tmp/exports"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the CSV export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetDensityPreset returns the configured interface density
func (s *Settings) GetDensityPreset() DensityPreset {
	preset := s.app.Preferences().String(KeyDensityPreset)
	if preset == "" {
		s.SetDensityPreset(DefaultDensityPreset)
		return DefaultDensityPreset
	}
	return DensityPreset(preset)
}

// SetDensityPreset sets the interface density
func (s *Settings) SetDensityPreset(preset DensityPreset) {
	s.app.Preferences().SetString(KeyDensityPreset, string(preset))
}

// GetDateFormat returns the date display format (Go reference layout)
func (s *Settings) GetDateFormat() string {
	format := s.app.Preferences().String(KeyDateFormat)
	if format == "" {
		s.SetDateFormat(DefaultDateFormat)
		return DefaultDateFormat
	}
	return format
}

// SetDateFormat sets the date display format
func (s *Settings) SetDateFormat(format string) {
	if format == "" {
		format = DefaultDateFormat
	}
	s.app.Preferences().SetString(KeyDateFormat, format)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultCountry returns the default phone-input country code
func (s *Settings) GetDefaultCountry() string {
	code := s.app.Preferences().String(KeyDefaultCountry)
	if code == "" {
		s.SetDefaultCountry(DefaultCountry)
		return DefaultCountry
	}
	return code
}

// SetDefaultCountry sets the default phone-input country code
func (s *Settings) SetDefaultCountry(code string) {
	s.app.Preferences().SetString(KeyDefaultCountry, code)
}

// GetLayoutOverridesPath returns the column-layout overrides file path.
// Empty means the built-in presets are used unmodified.
func (s *Settings) GetLayoutOverridesPath() string {
	return s.app.Preferences().String(KeyLayoutOverrides)
}

// SetLayoutOverridesPath sets the column-layout overrides file path
func (s *Settings) SetLayoutOverridesPath(path string) {
	s.app.Preferences().SetString(KeyLayoutOverrides, path)
}

// GetAutoRevealOnExport returns whether to reveal finished CSV exports
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether to reveal finished CSV exports
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}

// GetWindowSize returns the persisted window size
func (s *Settings) GetWindowSize() fyne.Size {
	w := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(w), float32(h))
}

// SetWindowSize persists the window size
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetInt(KeyWindowWidth, int(size.Width))
	s.app.Preferences().SetInt(KeyWindowHeight, int(size.Height))
}

// GetDensityPresetOptions returns available density preset options
func (s *Settings) GetDensityPresetOptions() []DensityPreset {
	return []DensityPreset{DensityCompact, DensityComfortable}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
		"es":     "Español",
	}
}
