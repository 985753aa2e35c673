package cli

import (
	"bufio"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/setavenger/neon-desktop/internal/keys"
)

func (r *runner) listCmd() *cobra.Command {
	var showKeys bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := r.controller(cmd.Context(), nil, nil)
			if err != nil {
				return err
			}
			m := ctrl.LoadKeys(cmd.Context())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if showKeys {
				fmt.Fprintln(w, "NAME\tFORMAT\tKEY")
			} else {
				fmt.Fprintln(w, "NAME\tFORMAT")
			}
			for _, name := range m.Names() {
				if showKeys {
					fmt.Fprintf(w, "%s\t%s\t%s\n", name, keys.Describe(m[name]), m[name])
				} else {
					fmt.Fprintf(w, "%s\t%s\n", name, keys.Describe(m[name]))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&showKeys, "show-keys", false, "print the stored keys as well")
	return cmd
}

func (r *runner) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write a key recovery file",
		Example: "  neon-keys export --out ~/neon-keys.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := r.controller(cmd.Context(), pathDialogs{save: out}, nil)
			if err != nil {
				return err
			}
			return ctrl.ExportKeys(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the recovery file to write")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (r *runner) importCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge a key recovery file into the saved wallets",
		Long: "Merge a key recovery file into the saved wallets.\n" +
			"Wallets in the file replace saved wallets with the same name.",
		Example: "  neon-keys import --in ~/neon-keys.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := r.controller(cmd.Context(), pathDialogs{open: in}, nil)
			if err != nil {
				return err
			}
			return ctrl.ImportKeys(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "path of the recovery file to read")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (r *runner) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			modals := &promptModals{
				in:        bufio.NewReader(cmd.InOrStdin()),
				out:       cmd.OutOrStdout(),
				assumeYes: yes,
			}
			ctrl, err := r.controller(cmd.Context(), nil, modals)
			if err != nil {
				return err
			}
			if _, ok := ctrl.LoadKeys(cmd.Context())[name]; !ok {
				return fmt.Errorf("no saved wallet named %q", name)
			}
			if err := ctrl.DeleteWallet(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
