package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/setavenger/neon-desktop/internal/state"
)

func (r *runner) networksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Manage private networks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List private networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.controller(cmd.Context(), nil, nil); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tURL\tID")
			for _, n := range r.env.State.Settings().PrivateNetworks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", n.Label, n.URL, n.ID)
			}
			return w.Flush()
		},
	}

	add := &cobra.Command{
		Use:     "add <name> <url>",
		Short:   "Add a private network",
		Example: "  neon-keys networks add Local http://127.0.0.1:30333",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.editNetworks(cmd, func(e *state.PrivateNetEditor) error {
				return e.Add(args[0], args[1])
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a private network",
		Long: "Remove a private network.\n" +
			"If it is the selected network the selection falls back to MainNet.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.editNetworks(cmd, func(e *state.PrivateNetEditor) error {
				i := e.IndexOf(args[0])
				if i < 0 {
					return fmt.Errorf("no private network named %q", args[0])
				}
				e.Remove(i)
				return nil
			})
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (r *runner) editNetworks(cmd *cobra.Command, edit func(*state.PrivateNetEditor) error) error {
	modals := &promptModals{editNetworks: edit}
	ctrl, err := r.controller(cmd.Context(), nil, modals)
	if err != nil {
		return err
	}
	return modals.afterEdit(ctrl.ManagePrivateNetworks(cmd.Context()))
}

func (r *runner) tokensCmd() *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage tokens",
	}
	cmd.PersistentFlags().StringVar(&network, "network", "", "network id or name, defaults to the selected network")

	list := &cobra.Command{
		Use:   "list",
		Short: "List tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.controller(cmd.Context(), nil, nil); err != nil {
				return err
			}
			networks := r.env.State.Networks()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tSCRIPT HASH\tNETWORK\tUSER")
			for _, t := range r.env.State.Settings().Tokens {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", t.Symbol, t.ScriptHash, networkLabel(networks, t.NetworkID), t.IsUserGenerated)
			}
			return w.Flush()
		},
	}

	add := &cobra.Command{
		Use:     "add <symbol> <script-hash>",
		Short:   "Add a token",
		Example: "  neon-keys tokens add RPX 0xecc6b20d3ccac1ee9ef109af5a7cdb85706b1df9 --network MainNet",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.editTokens(cmd, network, func(e *state.TokenEditor, networkID string) error {
				return e.Add(args[0], args[1], networkID)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <symbol>",
		Short: "Remove a user added token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.editTokens(cmd, network, func(e *state.TokenEditor, networkID string) error {
				i := e.IndexOf(args[0], networkID)
				if i < 0 {
					return fmt.Errorf("no token %q on this network", args[0])
				}
				return e.Remove(i)
			})
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (r *runner) editTokens(cmd *cobra.Command, network string, edit func(*state.TokenEditor, string) error) error {
	modals := &promptModals{}
	ctrl, err := r.controller(cmd.Context(), nil, modals)
	if err != nil {
		return err
	}

	target := r.env.State.Settings().NetworkID
	if network != "" {
		id, ok := networkID(r.env.State.Networks(), network)
		if !ok {
			return fmt.Errorf("unknown network %q", network)
		}
		target = id
	}
	modals.editTokens = func(e *state.TokenEditor) error {
		return edit(e, target)
	}
	return modals.afterEdit(ctrl.ManageTokens(cmd.Context()))
}
