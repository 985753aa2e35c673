package controller

import (
	"context"
	"fmt"

	"github.com/setavenger/neon-desktop/internal/logging"
)

// DeleteWallet removes a saved wallet after the user confirmed it.
func (s *Settings) DeleteWallet(ctx context.Context, name string) error {
	confirmed, ok, err := await(ctx, s.modals.Confirm(ctx, ConfirmRequest{
		Title: "Confirm Delete",
		Text:  fmt.Sprintf("Please confirm deleting saved wallet - %s", name),
	}))
	if err != nil {
		return err
	}
	if !ok || !confirmed {
		logging.L.Debug().Stringer("modal", ModalConfirm).Str("wallet", name).Msg("delete declined")
		return ErrCancelled
	}

	current, err := s.storedKeys(ctx)
	if err != nil {
		logging.L.Err(err).Msg("failed to load saved wallet keys before delete")
		err = fmt.Errorf("could not load saved wallet keys: %w", err)
		s.notices.Error(err)
		return err
	}

	current.Delete(name)
	_ = s.PersistKeys(ctx, current)
	s.state.SetKeys(current)

	logging.L.Info().Str("wallet", name).Msg("saved wallet deleted")
	return nil
}
