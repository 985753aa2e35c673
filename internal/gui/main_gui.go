package gui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/state"
)

// MainGUI holds the window content and the widgets refreshed from state
type MainGUI struct {
	ctx    context.Context
	app    fyne.App
	window fyne.Window
	ctrl   *controller.Settings
	state  *state.State
	tabs   *container.AppTabs

	networkMu     sync.Mutex
	networkSelect *widget.Select
	networkIDs    map[string]string

	walletsMu   sync.RWMutex
	walletList  *widget.List
	wallets     keys.KeyMap
	walletNames []string
}

// NewMainGUI builds the tabs from the current contents of st, so the
// controller should have loaded the stored data already.
func NewMainGUI(
	ctx context.Context,
	app fyne.App,
	window fyne.Window,
	ctrl *controller.Settings,
	st *state.State,
) *MainGUI {
	gui := &MainGUI{
		ctx:    ctx,
		app:    app,
		window: window,
		ctrl:   ctrl,
		state:  st,
	}

	gui.setupTabs()
	return gui
}

func (g *MainGUI) setupTabs() {
	g.tabs = container.NewAppTabs(
		container.NewTabItem("Settings", g.createSettingsTab()),
		container.NewTabItem("Wallets", g.createWalletsTab()),
	)
}

// GetContent returns the tab container for the main window
func (g *MainGUI) GetContent() fyne.CanvasObject {
	return g.tabs
}

// ShowWallets switches to the saved wallets tab.
func (g *MainGUI) ShowWallets() {
	g.tabs.SelectIndex(1)
}
