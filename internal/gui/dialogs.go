package gui

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/logging"
)

// Dialogs implements the controller's file dialogs, notices and modals on top
// of fyne dialogs bound to one window.
type Dialogs struct {
	window fyne.Window
}

// NewDialogs creates the fyne backed dialogs attached to window
func NewDialogs(window fyne.Window) *Dialogs {
	return &Dialogs{window: window}
}

// SaveFile shows the fyne save dialog and returns the chosen path
func (d *Dialogs) SaveFile(ctx context.Context, filter controller.FileFilter) (string, error) {
	result := make(chan string, 1)
	errs := make(chan error, 1)

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			errs <- err
			return
		}
		if writer == nil {
			result <- ""
			return
		}
		// the controller writes the file itself, fyne only picks the location
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			logging.L.Err(err).Msg("failed to close save dialog writer")
		}
		result <- path
	}, d.window)

	var exts []string
	for _, ext := range filter.Extensions {
		exts = append(exts, "."+ext)
	}
	if len(exts) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(exts))
		fd.SetFileName("neon-keys" + exts[0])
	}
	fd.Resize(fyne.NewSize(800, 600))
	fd.Show()

	select {
	case <-ctx.Done():
		fd.Hide()
		return "", ctx.Err()
	case err := <-errs:
		return "", err
	case path := <-result:
		if path == "" {
			return "", controller.ErrCancelled
		}
		if filepath.Ext(path) == "" && len(exts) > 0 {
			path += exts[0]
		}
		return path, nil
	}
}

// OpenFile shows the fyne open dialog and returns the chosen path
func (d *Dialogs) OpenFile(ctx context.Context) (string, error) {
	result := make(chan string, 1)
	errs := make(chan error, 1)

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			errs <- err
			return
		}
		if reader == nil {
			result <- ""
			return
		}
		path := reader.URI().Path()
		if err := reader.Close(); err != nil {
			logging.L.Err(err).Msg("failed to close open dialog reader")
		}
		result <- path
	}, d.window)
	fd.Resize(fyne.NewSize(800, 600))
	fd.Show()

	select {
	case <-ctx.Done():
		fd.Hide()
		return "", ctx.Err()
	case err := <-errs:
		return "", err
	case path := <-result:
		if path == "" {
			return "", controller.ErrCancelled
		}
		return path, nil
	}
}

// Info shows an information dialog
func (d *Dialogs) Info(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

// Error shows an error dialog
func (d *Dialogs) Error(err error) {
	dialog.ShowError(err, d.window)
}

// Confirm asks a yes/no question, closing the dialog resolves as declined
func (d *Dialogs) Confirm(ctx context.Context, req controller.ConfirmRequest) <-chan controller.Resolution[bool] {
	ch := make(chan controller.Resolution[bool], 1)
	dialog.ShowConfirm(req.Title, req.Text, func(ok bool) {
		ch <- controller.Resolution[bool]{Value: ok}
	}, d.window)
	return ch
}
