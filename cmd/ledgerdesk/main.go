package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerdesk/ledgerdesk/internal/config"
	"github.com/ledgerdesk/ledgerdesk/internal/platform"
	"github.com/ledgerdesk/ledgerdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ledgerdesk.ledgerdesk"
	AppName = "LedgerDesk"
)

var (
	flagLocale    string
	flagDensity   string
	flagCountry   string
	flagLayout    string
	flagExportDir string
	flagWidth     int
	flagHeight    int
	flagVerbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ledgerdesk",
		Short:   "Desktop accounting front end",
		Long:    "LedgerDesk is a desktop accounting front end with resizable document tables, CSV export, and localized UI.",
		Version: version,
		RunE:    run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&flagLocale, "locale", "", "UI language (en, de, es, system)")
	flags.StringVar(&flagDensity, "density", "", "interface density (compact, comfortable)")
	flags.StringVar(&flagCountry, "country", "", "default phone country code (e.g. US)")
	flags.StringVar(&flagLayout, "layout-config", "", "path to a column layout overrides YAML file")
	flags.StringVar(&flagExportDir, "export-dir", "", "directory for CSV exports")
	flags.IntVar(&flagWidth, "width", 0, "initial window width")
	flags.IntVar(&flagHeight, "height", 0, "initial window height")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	zap.S().Infow("starting", "app", AppName, "version", version)

	myApp := fyneapp.NewWithID(AppID)
	settings := config.NewSettings(myApp)
	applyFlags(settings)

	myApp.Settings().SetTheme(ui.NewLedgerTheme(settings.GetDensityPreset()))

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		zap.S().Warnw("failed to ensure export dir", "dir", exportDir, "error", err)
	}

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(windowSize(settings))

	rootUI := ui.NewRootUI(window, myApp)
	window.SetContent(rootUI.Content())

	window.SetOnClosed(func() {
		settings.SetWindowSize(window.Canvas().Size())
	})

	window.ShowAndRun()
	return nil
}

// applyFlags writes any explicitly passed flags into preferences so the rest
// of the app reads one source of truth.
func applyFlags(settings *config.Settings) {
	if flagLocale != "" {
		settings.SetLanguage(flagLocale)
	}
	if flagDensity != "" {
		settings.SetDensityPreset(config.DensityPreset(flagDensity))
	}
	if flagCountry != "" {
		settings.SetDefaultCountry(flagCountry)
	}
	if flagLayout != "" {
		settings.SetLayoutOverridesPath(flagLayout)
	}
	if flagExportDir != "" {
		settings.SetExportDirectory(flagExportDir)
	}
}

func windowSize(settings *config.Settings) fyne.Size {
	size := settings.GetWindowSize()
	if flagWidth > 0 {
		size.Width = float32(flagWidth)
	}
	if flagHeight > 0 {
		size.Height = float32(flagHeight)
	}
	return size
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
