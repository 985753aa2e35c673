package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/logging"
)

// createWalletsTab lists the saved wallet keys with export and import actions
func (g *MainGUI) createWalletsTab() fyne.CanvasObject {
	g.wallets = g.state.Keys()
	g.walletNames = g.wallets.Names()
	countLabel := widget.NewLabel(FormatWalletCount(len(g.wallets)))

	g.walletList = widget.NewList(
		func() int {
			g.walletsMu.RLock()
			defer g.walletsMu.RUnlock()
			return len(g.walletNames)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel("")
			name.TextStyle = fyne.TextStyle{Bold: true}
			key := widget.NewLabel("")
			key.Truncation = fyne.TextTruncateEllipsis
			format := widget.NewLabel("")
			format.TextStyle = fyne.TextStyle{Italic: true}
			copyBtn := widget.NewButtonWithIcon("", theme.ContentCopyIcon(), nil)
			deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			deleteBtn.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil,
				name,
				container.NewHBox(format, copyBtn, deleteBtn),
				key,
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			g.walletsMu.RLock()
			if id >= len(g.walletNames) {
				g.walletsMu.RUnlock()
				return
			}
			name := g.walletNames[id]
			value := g.wallets[name]
			g.walletsMu.RUnlock()

			row := item.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(value)
			row.Objects[1].(*widget.Label).SetText(TruncateName(name, walletNameWidth))
			right := row.Objects[2].(*fyne.Container)
			right.Objects[0].(*widget.Label).SetText(string(keys.Describe(value)))
			right.Objects[1].(*widget.Button).OnTapped = func() {
				g.window.Clipboard().SetContent(value)
				dialog.ShowInformation("Copied", "Key copied to clipboard", g.window)
			}
			right.Objects[2].(*widget.Button).OnTapped = func() {
				go g.deleteWallet(name)
			}
		},
	)

	empty := g.createEmptyWalletsView()
	body := container.NewStack(g.walletList, empty)
	showList := func(n int) {
		if n == 0 {
			g.walletList.Hide()
			empty.Show()
		} else {
			empty.Hide()
			g.walletList.Show()
		}
	}
	showList(len(g.wallets))

	g.state.OnKeysChanged(func(m keys.KeyMap) {
		g.walletsMu.Lock()
		g.wallets = m
		g.walletNames = m.Names()
		g.walletsMu.Unlock()
		countLabel.SetText(FormatWalletCount(len(m)))
		showList(len(m))
		g.walletList.Refresh()
	})

	exportBtn := widget.NewButtonWithIcon("Export key recovery file", theme.DocumentSaveIcon(), func() {
		go g.exportKeys()
	})
	importBtn := widget.NewButtonWithIcon("Load key recovery file", theme.FolderOpenIcon(), func() {
		go g.importKeys()
	})

	header := container.NewVBox(
		widget.NewLabel("Saved Wallet Keys"),
		countLabel,
		widget.NewSeparator(),
	)
	footer := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(exportBtn, importBtn),
	)
	return container.NewBorder(header, footer, nil, nil, body)
}

func (g *MainGUI) deleteWallet(name string) {
	if err := g.ctrl.DeleteWallet(g.ctx, name); err != nil && !errors.Is(err, controller.ErrCancelled) {
		logging.L.Err(err).Str("wallet", name).Msg("delete wallet failed")
	}
}

// exportKeys and importKeys surface their failures through notices already,
// only unexpected errors are logged here.
func (g *MainGUI) exportKeys() {
	if err := g.ctrl.ExportKeys(g.ctx); err != nil && !errors.Is(err, controller.ErrCancelled) {
		logging.L.Debug().Err(err).Msg("export finished with error")
	}
}

func (g *MainGUI) importKeys() {
	if err := g.ctrl.ImportKeys(g.ctx); err != nil && !errors.Is(err, controller.ErrCancelled) {
		logging.L.Debug().Err(err).Msg("import finished with error")
	}
}
