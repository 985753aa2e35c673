package controller

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/keys"
	"github.com/setavenger/neon-desktop/internal/logging"
)

// RecoveryFileFilter is the only filter offered when exporting.
var RecoveryFileFilter = FileFilter{
	Name:       "JSON",
	Extensions: []string{configs.RecoveryFileExtension},
}

// ExportKeys writes the current key map to a file chosen by the user.
func (s *Settings) ExportKeys(ctx context.Context) error {
	content, err := keys.Encode(s.state.Keys())
	if err != nil {
		s.notices.Error(err)
		return err
	}

	path, err := s.dialogs.SaveFile(ctx, RecoveryFileFilter)
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			logging.L.Err(err).Msg("save dialog failed")
		}
		return err
	}

	if err := afero.WriteFile(s.fs, path, content, 0600); err != nil {
		logging.L.Err(err).Str("path", path).Msg("failed to write key recovery file")
		s.removePartial(path)
		err = fmt.Errorf("An error occurred creating the file %w", err)
		s.notices.Error(err)
		return err
	}

	sum := keys.Checksum(content)
	logging.L.Info().Str("path", path).Str("checksum", sum).Msg("key recovery file saved")
	s.notices.Info("Export", fmt.Sprintf("The file has been successfully saved\nChecksum: %s", sum))
	return nil
}

// removePartial deletes what a failed export left at path. Save dialogs may
// create the file before it is written.
func (s *Settings) removePartial(path string) {
	err := s.fs.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.L.Warn().Err(err).Str("path", path).Msg("could not remove incomplete key recovery file")
	}
}

// ImportKeys reads a recovery file chosen by the user and merges it into the
// stored key map. Imported entries replace stored entries of the same name.
func (s *Settings) ImportKeys(ctx context.Context) error {
	path, err := s.dialogs.OpenFile(ctx)
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			logging.L.Err(err).Msg("open dialog failed")
		}
		return err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		logging.L.Err(err).Str("path", path).Msg("failed to read key recovery file")
		err = fmt.Errorf("An error occurred reading the file: %w", err)
		s.notices.Error(err)
		return err
	}

	imported, err := keys.Decode(data)
	if err != nil {
		logging.L.Err(err).Str("path", path).Msg("rejected key recovery file")
		err = fmt.Errorf("The file is not a valid key recovery file: %w", err)
		s.notices.Error(err)
		return err
	}

	current, err := s.storedKeys(ctx)
	if err != nil {
		logging.L.Err(err).Msg("failed to load saved wallet keys before import")
		err = fmt.Errorf("could not load saved wallet keys: %w", err)
		s.notices.Error(err)
		return err
	}

	current.Merge(imported)
	s.state.SetKeys(current)
	_ = s.PersistKeys(ctx, current)

	logging.L.Info().Int("imported", len(imported)).Int("total", len(current)).Msg("key recovery file imported")
	s.notices.Info("Import", fmt.Sprintf("Imported %d wallet keys", len(imported)))
	return nil
}
