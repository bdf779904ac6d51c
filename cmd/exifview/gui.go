package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"exifview/internal/config"
	"exifview/internal/exiftool"
	"exifview/internal/logger"
	"exifview/internal/shutdown"
	"exifview/internal/ui/builder"
	"exifview/internal/ui/fyneui"
	"exifview/internal/viewer"
)

// runGUI opens the viewer window and blocks until it closes. Metadata is
// loaded in the background while a progress indicator is shown.
func runGUI(sm *shutdown.Manager, cfg config.Config, log *logger.ZerologAdapter, files []string) error {
	// A broken layout is a build defect; find it before opening a window.
	if _, err := viewer.Layout(); err != nil {
		return err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	setupMenus(fyneApp, window, cfg)

	reporter := fyneui.NewDialogReporter(fyneApp, window, viewer.Describe, log)
	b := builder.New(fyneui.NewToolkit(nil), builder.NewContext(), log)
	runner := exiftool.NewRunner(exiftool.ExecSpawner{}, reporter, log)
	session := viewer.NewSession(runner, b, reporter, log, viewer.Options{
		Tool: cfg.ExifToolPath,
		Args: cfg.ExifToolArgs,
	})

	sm.OnShutdown("window", func() {
		fyne.Do(fyneApp.Quit)
	})
	defer sm.Shutdown("window closed")

	window.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Reading metadata of %d file(s)", len(files))),
		widget.NewProgressBarInfinite(),
	)))

	go func() {
		if err := session.Load(sm.Context(), files); err != nil {
			// already shown to the user by the reporter
			return
		}
		fyne.Do(func() {
			root, err := session.Start()
			if err != nil {
				log.Fatal("Main", err, map[string]interface{}{"stage": "start"})
			}
			content, err := fyneui.Object(root)
			if err != nil {
				log.Fatal("Main", err, nil)
			}
			window.SetContent(content)
		})
	}()

	window.ShowAndRun()
	return nil
}

func setupMenus(fyneApp fyne.App, window fyne.Window, cfg config.Config) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() {
			fyneApp.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About "+AppName,
				fmt.Sprintf("%s %s\nMetadata by %s", AppName, AppVersion, cfg.ExifToolPath),
				window)
		}),
	)

	window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}
