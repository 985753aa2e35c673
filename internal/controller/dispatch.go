package controller

import (
	"context"

	"github.com/setavenger/neon-desktop/internal/logging"
)

// SelectExplorer forwards a block explorer selection to the state
func (s *Settings) SelectExplorer(id string) {
	s.state.SetBlockExplorer(id)
}

// SelectCurrency forwards a currency selection to the state
func (s *Settings) SelectCurrency(code string) {
	s.state.SetCurrency(code)
}

// SelectNetwork forwards a network selection to the state
func (s *Settings) SelectNetwork(id string) {
	s.state.SetNetworkID(id)
}

// ManagePrivateNetworks lets the user edit the private network list.
// A cancelled modal leaves the list unchanged and returns ErrCancelled.
func (s *Settings) ManagePrivateNetworks(ctx context.Context) error {
	current := s.state.Settings().PrivateNetworks
	updated, ok, err := await(ctx, s.modals.EditPrivateNetworks(ctx, PrivateNetRequest{Networks: current}))
	if err != nil {
		return err
	}
	if !ok {
		logging.L.Debug().Stringer("modal", ModalPrivateNet).Msg("modal dismissed")
		return ErrCancelled
	}
	s.state.SetPrivateNetworks(updated)
	return nil
}

// ManageTokens lets the user edit the token list.
// A cancelled modal leaves the list unchanged and returns ErrCancelled.
func (s *Settings) ManageTokens(ctx context.Context) error {
	rec := s.state.Settings()
	updated, ok, err := await(ctx, s.modals.EditTokens(ctx, TokenRequest{
		Tokens:    rec.Tokens,
		Networks:  s.state.Networks(),
		NetworkID: rec.NetworkID,
	}))
	if err != nil {
		return err
	}
	if !ok {
		logging.L.Debug().Stringer("modal", ModalToken).Msg("modal dismissed")
		return ErrCancelled
	}
	s.state.SetTokens(updated)
	return nil
}
