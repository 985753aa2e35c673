package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// createEmptyWalletsView is shown in place of the wallet list while no
// wallet keys are saved.
func (g *MainGUI) createEmptyWalletsView() fyne.CanvasObject {
	title := widget.NewLabel("No saved wallets")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel("Load a key recovery file to restore your saved wallet keys.")
	description.Alignment = fyne.TextAlignCenter

	importButton := widget.NewButtonWithIcon("Load key recovery file", theme.FolderOpenIcon(), func() {
		go g.importKeys()
	})

	return container.NewCenter(container.NewVBox(
		title,
		description,
		container.NewCenter(importButton),
	))
}
