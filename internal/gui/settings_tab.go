package gui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/state"
)

// createSettingsTab creates the settings tab
func (g *MainGUI) createSettingsTab() fyne.CanvasObject {
	current := g.state.Settings()

	// Network selection, rebuilt whenever the private networks change
	g.networkSelect = widget.NewSelect(nil, func(label string) {
		g.networkMu.Lock()
		id, ok := g.networkIDs[label]
		g.networkMu.Unlock()
		if ok {
			g.ctrl.SelectNetwork(id)
		}
	})
	g.refreshNetworkOptions(current)

	privateNetBtn := widget.NewButtonWithIcon("Manage Private Networks", theme.SettingsIcon(), func() {
		go g.runModal(g.ctrl.ManagePrivateNetworks)
	})
	tokensBtn := widget.NewButtonWithIcon("Manage Tokens", theme.ListIcon(), func() {
		go g.runModal(g.ctrl.ManageTokens)
	})

	explorerSelect := widget.NewSelect(configs.Explorers(), func(value string) {
		g.ctrl.SelectExplorer(value)
	})
	explorerSelect.SetSelected(current.BlockExplorer)

	currencyLabels := make([]string, 0, len(configs.Currencies()))
	for _, code := range configs.Currencies() {
		currencyLabels = append(currencyLabels, CurrencyLabel(code))
	}
	currencySelect := widget.NewSelect(currencyLabels, func(label string) {
		g.ctrl.SelectCurrency(CurrencyCode(label))
	})
	currencySelect.SetSelected(CurrencyLabel(current.Currency))

	g.state.OnSettingsChanged(g.refreshNetworkOptions)

	networkSection := container.NewVBox(
		widget.NewLabel("Network Settings"),
		widget.NewForm(
			widget.NewFormItem("Network", g.networkSelect),
		),
		privateNetBtn,
	)

	tokenSection := container.NewVBox(
		widget.NewLabel("Tokens"),
		tokensBtn,
	)

	displaySection := container.NewVBox(
		widget.NewLabel("Display Settings"),
		widget.NewForm(
			widget.NewFormItem("Block Explorer", explorerSelect),
			widget.NewFormItem("Currency", currencySelect),
		),
	)

	return container.NewVBox(
		widget.NewLabel("Manage your Neon wallet keys and settings"),
		widget.NewSeparator(),
		networkSection,
		widget.NewSeparator(),
		tokenSection,
		widget.NewSeparator(),
		displaySection,
	)
}

// refreshNetworkOptions rebuilds the network selector from rec.
// Selecting the already selected label does not emit a settings change.
func (g *MainGUI) refreshNetworkOptions(rec state.SettingsRecord) {
	networks := g.state.Networks()

	g.networkMu.Lock()
	labels := make([]string, 0, len(networks))
	ids := make(map[string]string, len(networks))
	selected := ""
	for _, n := range networks {
		labels = append(labels, n.Label)
		ids[n.Label] = n.ID
		if n.ID == rec.NetworkID {
			selected = n.Label
		}
	}
	g.networkIDs = ids
	g.networkMu.Unlock()

	g.networkSelect.Options = labels
	if g.networkSelect.Selected != selected {
		g.networkSelect.SetSelected(selected)
	}
	g.networkSelect.Refresh()
}

// runModal runs a modal driven controller operation off the UI goroutine.
func (g *MainGUI) runModal(op func(ctx context.Context) error) {
	if err := op(g.ctx); err != nil && !errors.Is(err, controller.ErrCancelled) {
		logging.L.Err(err).Msg("settings modal failed")
	}
}
