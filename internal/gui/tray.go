package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/state"
)

// TrayManager keeps the system tray menu in sync with the saved wallets and
// the selected network.
type TrayManager struct {
	app     fyne.App
	desk    desktop.App
	window  fyne.Window
	gui     *MainGUI
	visible bool
}

// NewTrayManager installs the tray menu. It returns nil when the driver has
// no system tray, the window then closes normally.
func NewTrayManager(app fyne.App, window fyne.Window, gui *MainGUI) *TrayManager {
	desk, ok := app.(desktop.App)
	if !ok {
		return nil
	}
	tm := &TrayManager{
		app:     app,
		desk:    desk,
		window:  window,
		gui:     gui,
		visible: true,
	}

	window.SetCloseIntercept(tm.hideWindow)
	gui.state.OnSettingsChanged(func(state.SettingsRecord) { tm.refresh() })
	gui.state.OnKeysChanged(func(keys.KeyMap) { tm.refresh() })
	tm.refresh()
	return tm
}

func (tm *TrayManager) refresh() {
	tm.desk.SetSystemTrayMenu(tm.buildMenu())
}

func (tm *TrayManager) buildMenu() *fyne.Menu {
	st := tm.gui.state
	selected := st.Settings().NetworkID

	var networkItems []*fyne.MenuItem
	for _, n := range st.Networks() {
		id := n.ID
		item := fyne.NewMenuItem(n.Label, func() {
			tm.gui.ctrl.SelectNetwork(id)
		})
		item.Checked = id == selected
		networkItems = append(networkItems, item)
	}
	network := fyne.NewMenuItem("Network", nil)
	network.ChildMenu = fyne.NewMenu("", networkItems...)

	count := fyne.NewMenuItem(FormatWalletCount(len(st.Keys())), nil)
	count.Disabled = true

	quit := fyne.NewMenuItem("Quit", tm.app.Quit)
	quit.IsQuit = true

	return fyne.NewMenu("Neon",
		fyne.NewMenuItem("Show/Hide", tm.toggleWindow),
		fyne.NewMenuItemSeparator(),
		count,
		fyne.NewMenuItem("Export Keys...", func() {
			tm.showWallets()
			go tm.gui.exportKeys()
		}),
		fyne.NewMenuItem("Load Keys...", func() {
			tm.showWallets()
			go tm.gui.importKeys()
		}),
		fyne.NewMenuItemSeparator(),
		network,
		fyne.NewMenuItemSeparator(),
		quit,
	)
}

func (tm *TrayManager) toggleWindow() {
	if tm.visible {
		tm.hideWindow()
	} else {
		tm.showWindow()
	}
}

// showWallets brings the window up on the wallets tab, the file dialogs
// are attached to it.
func (tm *TrayManager) showWallets() {
	tm.showWindow()
	tm.gui.ShowWallets()
}

func (tm *TrayManager) showWindow() {
	tm.window.Show()
	tm.window.RequestFocus()
	tm.visible = true
}

func (tm *TrayManager) hideWindow() {
	tm.window.Hide()
	tm.visible = false
}
