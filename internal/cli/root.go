// Package cli is a terminal front end for the saved wallet keys and settings.
// It drives the same controller as the desktop window, dialogs are replaced by
// flags and prompts.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/setavenger/neon-desktop/internal/controller"
	"github.com/setavenger/neon-desktop/internal/logging"
	"github.com/setavenger/neon-desktop/internal/setup"
)

// IOStreams are the terminal streams used by the commands.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type runner struct {
	streams IOStreams
	fs      afero.Fs

	dataDir string
	backend string
	debug   bool

	env     *setup.Env
	notices *streamNotices
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, streams IOStreams) int {
	r := &runner{
		streams: streams,
		fs:      afero.NewOsFs(),
		notices: &streamNotices{out: streams.Out, errOut: streams.ErrOut},
	}
	cmd := r.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	err := cmd.ExecuteContext(ctx)
	r.close()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, controller.ErrCancelled):
		fmt.Fprintln(streams.ErrOut, "cancelled")
	case !r.notices.reported(err):
		fmt.Fprintf(streams.ErrOut, "Error: %v\n", err)
	}
	return 1
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "neon-keys",
		Short:         "Manage saved Neon wallet keys and settings",
		Long:          "A command-line tool for the wallet keys and settings shared with Neon Desktop.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&r.dataDir, "datadir", "", "path to data directory for Neon Desktop")
	root.PersistentFlags().StringVar(&r.backend, "backend", "", "settings store backend (bolt, leveldb, file, memory)")
	root.PersistentFlags().BoolVar(&r.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		r.listCmd(),
		r.exportCmd(),
		r.importCmd(),
		r.deleteCmd(),
		r.settingsCmd(),
		r.networksCmd(),
		r.tokensCmd(),
	)
	return root
}

// controller opens the store on first use and returns a started controller
// wired to the given dialogs and modals.
func (r *runner) controller(ctx context.Context, dialogs controller.FileDialogs, modals controller.Modals) (*controller.Settings, error) {
	if r.env == nil {
		opts := setup.Options{DataDir: r.dataDir, StoreBackend: r.backend}
		if r.debug {
			opts.LogLevel = "debug"
		}
		env, err := setup.Open(opts)
		if err != nil {
			return nil, err
		}
		r.env = env
	}
	if dialogs == nil {
		dialogs = pathDialogs{}
	}
	if modals == nil {
		modals = &promptModals{}
	}

	ctrl, err := controller.New(controller.Deps{
		Store:    r.env.Store,
		State:    r.env.State,
		FS:       r.fs,
		Dialogs:  dialogs,
		Notices:  r.notices,
		Modals:   modals,
		Defaults: r.env.Defaults,
	})
	if err != nil {
		return nil, err
	}
	ctrl.Start(ctx)
	return ctrl, nil
}

func (r *runner) close() {
	if r.env == nil {
		return
	}
	if err := r.env.Store.Close(); err != nil {
		logging.L.Err(err).Msg("failed to close store")
	}
	r.env = nil
}
