package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/state"
)

// EditPrivateNetworks shows the private network manager. Save resolves with
// the edited list, Cancel resolves as cancelled.
func (d *Dialogs) EditPrivateNetworks(
	_ context.Context, req controller.PrivateNetRequest,
) <-chan controller.Resolution[[]state.PrivateNetwork] {
	ch := make(chan controller.Resolution[[]state.PrivateNetwork], 1)
	editor := state.NewPrivateNetEditor(req.Networks)

	var list *widget.List
	list = widget.NewList(
		func() int { return len(editor.Networks) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			row := item.(*fyne.Container)
			n := editor.Networks[id]
			row.Objects[0].(*widget.Label).SetText(n.Label + "  " + n.URL)
			row.Objects[1].(*widget.Button).OnTapped = func() {
				editor.Remove(id)
				list.Refresh()
			}
		},
	)

	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Network name")
	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://node.example.org:10332")

	addBtn := widget.NewButtonWithIcon("Add Network", theme.ContentAddIcon(), func() {
		if err := editor.Add(labelEntry.Text, urlEntry.Text); err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		labelEntry.SetText("")
		urlEntry.SetText("")
		list.Refresh()
	})

	form := widget.NewForm(
		widget.NewFormItem("Name", labelEntry),
		widget.NewFormItem("Node URL", urlEntry),
	)
	content := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), form, addBtn),
		nil, nil,
		list,
	)

	dlg := dialog.NewCustomConfirm("Manage Private Networks", "Save", "Cancel", content, func(save bool) {
		if !save {
			ch <- controller.Resolution[[]state.PrivateNetwork]{Cancelled: true}
			return
		}
		ch <- controller.Resolution[[]state.PrivateNetwork]{Value: editor.Result()}
	}, d.window)
	dlg.Resize(fyne.NewSize(600, 500))
	dlg.Show()

	return ch
}

// EditTokens shows the token manager for the networks in req.
func (d *Dialogs) EditTokens(
	_ context.Context, req controller.TokenRequest,
) <-chan controller.Resolution[[]state.Token] {
	ch := make(chan controller.Resolution[[]state.Token], 1)
	editor := state.NewTokenEditor(req.Tokens)

	networkLabels := make([]string, 0, len(req.Networks))
	labelToID := make(map[string]string, len(req.Networks))
	idToLabel := make(map[string]string, len(req.Networks))
	for _, n := range req.Networks {
		networkLabels = append(networkLabels, n.Label)
		labelToID[n.Label] = n.ID
		idToLabel[n.ID] = n.Label
	}

	var list *widget.List
	list = widget.NewList(
		func() int { return len(editor.Tokens) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			row := item.(*fyne.Container)
			tok := editor.Tokens[id]
			network := idToLabel[tok.NetworkID]
			if network == "" {
				network = tok.NetworkID
			}
			row.Objects[0].(*widget.Label).SetText(tok.Symbol + "  " + tok.ScriptHash + "  (" + network + ")")
			btn := row.Objects[1].(*widget.Button)
			if tok.IsUserGenerated {
				btn.Enable()
			} else {
				btn.Disable()
			}
			btn.OnTapped = func() {
				if err := editor.Remove(id); err != nil {
					dialog.ShowError(err, d.window)
					return
				}
				list.Refresh()
			}
		},
	)

	symbolEntry := widget.NewEntry()
	symbolEntry.SetPlaceHolder("Symbol")
	hashEntry := widget.NewEntry()
	hashEntry.SetPlaceHolder("Script hash")
	networkSelect := widget.NewSelect(networkLabels, nil)
	if label, ok := idToLabel[req.NetworkID]; ok {
		networkSelect.SetSelected(label)
	}

	addBtn := widget.NewButtonWithIcon("Add Token", theme.ContentAddIcon(), func() {
		if err := editor.Add(symbolEntry.Text, hashEntry.Text, labelToID[networkSelect.Selected]); err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		symbolEntry.SetText("")
		hashEntry.SetText("")
		list.Refresh()
	})

	form := widget.NewForm(
		widget.NewFormItem("Symbol", symbolEntry),
		widget.NewFormItem("Script Hash", hashEntry),
		widget.NewFormItem("Network", networkSelect),
	)
	content := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), form, addBtn),
		nil, nil,
		list,
	)

	dlg := dialog.NewCustomConfirm("Manage Tokens", "Save", "Cancel", content, func(save bool) {
		if !save {
			ch <- controller.Resolution[[]state.Token]{Cancelled: true}
			return
		}
		ch <- controller.Resolution[[]state.Token]{Value: editor.Result()}
	}, d.window)
	dlg.Resize(fyne.NewSize(650, 550))
	dlg.Show()

	return ch
}
