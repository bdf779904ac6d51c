package fyneui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"exifview/internal/logger"
)

// Describer turns an error into a dialog title and message.
type Describer func(err error) (title, message string)

// DialogReporter shows session-ending errors in an error dialog and quits
// the application once the dialog is dismissed. Only the first error is
// shown; later ones are logged.
type DialogReporter struct {
	app      fyne.App
	window   fyne.Window
	describe Describer
	logger   logger.Logger
	once     sync.Once
}

func NewDialogReporter(app fyne.App, window fyne.Window, describe Describer, log logger.Logger) *DialogReporter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &DialogReporter{app: app, window: window, describe: describe, logger: log}
}

// Report may be called from any goroutine.
func (r *DialogReporter) Report(err error) {
	if err == nil {
		return
	}
	r.logger.Error("DialogReporter", err, nil)

	r.once.Do(func() {
		fyne.Do(func() {
			r.show(err)
		})
	})
}

func (r *DialogReporter) show(err error) {
	var d dialog.Dialog
	if r.describe == nil {
		d = dialog.NewError(err, r.window)
	} else {
		title, message := r.describe(err)
		d = dialog.NewInformation(title, message, r.window)
	}
	d.SetOnClosed(r.app.Quit)
	d.Show()
}
