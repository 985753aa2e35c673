package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/setavenger/neon-desktop/internal/configs"
	"github.com/setavenger/neon-desktop/internal/state"
)

func (r *runner) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the display and network settings",
	}
	cmd.AddCommand(r.settingsShowCmd(), r.settingsSetCmd())
	return cmd
}

func (r *runner) settingsShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.controller(cmd.Context(), nil, nil); err != nil {
				return err
			}
			rec := r.env.State.Settings()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Block explorer\t%s\n", rec.BlockExplorer)
			fmt.Fprintf(w, "Network\t%s\n", networkLabel(r.env.State.Networks(), rec.NetworkID))
			fmt.Fprintf(w, "Currency\t%s\n", strings.ToUpper(rec.Currency))
			fmt.Fprintf(w, "Private networks\t%d\n", len(rec.PrivateNetworks))
			fmt.Fprintf(w, "Tokens\t%d\n", len(rec.Tokens))
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored settings record")
	return cmd
}

func (r *runner) settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <explorer|currency|network> <value>",
		Short: "Change one setting",
		Example: `  neon-keys settings set explorer Neoscan
  neon-keys settings set currency eur
  neon-keys settings set network TestNet`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"explorer", "currency", "network"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := r.controller(cmd.Context(), nil, nil)
			if err != nil {
				return err
			}
			field, value := args[0], args[1]
			switch field {
			case "explorer":
				if !configs.IsExplorer(value) {
					return fmt.Errorf("unknown block explorer %q, expected one of %s", value, strings.Join(configs.Explorers(), ", "))
				}
				ctrl.SelectExplorer(value)
			case "currency":
				code := strings.ToLower(value)
				if !configs.IsCurrency(code) {
					return fmt.Errorf("unknown currency %q, expected one of %s", value, strings.Join(configs.Currencies(), ", "))
				}
				ctrl.SelectCurrency(code)
			case "network":
				id, ok := networkID(r.env.State.Networks(), value)
				if !ok {
					return fmt.Errorf("unknown network %q", value)
				}
				ctrl.SelectNetwork(id)
			default:
				return fmt.Errorf("unknown setting %q", field)
			}
			return nil
		},
	}
}

// networkID accepts a network id or a case insensitive label.
func networkID(networks []state.Network, value string) (string, bool) {
	for _, n := range networks {
		if n.ID == value || strings.EqualFold(n.Label, value) {
			return n.ID, true
		}
	}
	return "", false
}

func networkLabel(networks []state.Network, id string) string {
	for _, n := range networks {
		if n.ID == id {
			return n.Label
		}
	}
	return id
}
