package gui

import (
	"context"
	"errors"

	"github.com/sqweek/dialog"

	"github.com/setavenger/neon-desktop/internal/controller"
)

// NativeDialogs opens the operating system's own file pickers instead of the
// fyne ones. The OS dialogs cannot be dismissed from code, ctx is only checked
// before showing them.
type NativeDialogs struct{}

// SaveFile shows the OS save dialog filtered to filter
func (NativeDialogs) SaveFile(ctx context.Context, filter controller.FileFilter) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b := dialog.File().Title("Export key recovery file")
	if len(filter.Extensions) > 0 {
		b = b.Filter(filter.Name, filter.Extensions...)
	}
	path, err := b.Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", controller.ErrCancelled
	}
	return path, err
}

// OpenFile shows the OS open dialog
func (NativeDialogs) OpenFile(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := dialog.File().Title("Load key recovery file").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", controller.ErrCancelled
	}
	return path, err
}
