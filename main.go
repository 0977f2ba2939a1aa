package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"
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

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		return
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	zap.S().Infow("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewLedgerTheme(settings.GetDensityPreset()))

	exportDir := settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(exportDir); err != nil {
		zap.S().Warnw("failed to ensure export dir", "dir", exportDir, "error", err)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(settings.GetWindowSize())

	rootUI := ui.NewRootUI(myWindow, myApp)
	myWindow.SetContent(rootUI.Content())

	myWindow.SetOnClosed(func() {
		settings.SetWindowSize(myWindow.Canvas().Size())
	})

	myWindow.ShowAndRun()
}
