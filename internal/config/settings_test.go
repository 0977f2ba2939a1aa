package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)

	retrievedDir := settings.GetExportDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, retrievedDir)
	}
}

func TestDensityPreset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	preset := settings.GetDensityPreset()
	if preset != DefaultDensityPreset {
		t.Errorf("Expected default density preset %s, got %s", DefaultDensityPreset, preset)
	}

	// Test setting custom value
	settings.SetDensityPreset(DensityComfortable)

	retrievedPreset := settings.GetDensityPreset()
	if retrievedPreset != DensityComfortable {
		t.Errorf("Expected density preset %s, got %s", DensityComfortable, retrievedPreset)
	}
}

func TestDateFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	format := settings.GetDateFormat()
	if format != DefaultDateFormat {
		t.Errorf("Expected default date format %s, got %s", DefaultDateFormat, format)
	}

	// Test setting custom value
	customFormat := "02.01.2006"
	settings.SetDateFormat(customFormat)

	retrievedFormat := settings.GetDateFormat()
	if retrievedFormat != customFormat {
		t.Errorf("Expected date format %s, got %s", customFormat, retrievedFormat)
	}

	// Test empty format defaults back
	settings.SetDateFormat("")
	retrievedFormat = settings.GetDateFormat()
	if retrievedFormat != DefaultDateFormat {
		t.Errorf("Empty format should default to %s, got %s", DefaultDateFormat, retrievedFormat)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("de")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "de" {
		t.Errorf("Expected language 'de', got %s", retrievedLang)
	}
}

func TestDefaultCountry(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	code := settings.GetDefaultCountry()
	if code != DefaultCountry {
		t.Errorf("Expected default country %s, got %s", DefaultCountry, code)
	}

	// Test setting custom value
	settings.SetDefaultCountry("DE")

	retrievedCode := settings.GetDefaultCountry()
	if retrievedCode != "DE" {
		t.Errorf("Expected country 'DE', got %s", retrievedCode)
	}
}

func TestLayoutOverridesPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default: built-in presets apply
	if path := settings.GetLayoutOverridesPath(); path != "" {
		t.Errorf("Expected empty overrides path, got %s", path)
	}

	settings.SetLayoutOverridesPath("/etc/ledgerdesk/layout.yaml")
	if path := settings.GetLayoutOverridesPath(); path != "/etc/ledgerdesk/layout.yaml" {
		t.Errorf("Expected overrides path to round-trip, got %s", path)
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoRevealOnExport() {
		t.Error("Auto-reveal should default to true")
	}

	settings.SetAutoRevealOnExport(false)
	if settings.GetAutoRevealOnExport() {
		t.Error("Auto-reveal should be false after disabling")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	if size.Width != DefaultWindowWidth || size.Height != DefaultWindowHeight {
		t.Errorf("Expected default window size %dx%d, got %vx%v",
			DefaultWindowWidth, DefaultWindowHeight, size.Width, size.Height)
	}

	// Test setting custom value
	settings.SetWindowSize(fyne.NewSize(1280, 800))

	size = settings.GetWindowSize()
	if size.Width != 1280 || size.Height != 800 {
		t.Errorf("Expected window size 1280x800, got %vx%v", size.Width, size.Height)
	}
}

func TestGetDensityPresetOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetDensityPresetOptions()
	expectedOptions := []DensityPreset{DensityCompact, DensityComfortable}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d density options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Density option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "de", "es"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
