package cli

import (
	"fmt"

	"paulocell_pdv/internal/app"

	"github.com/spf13/cobra"
)

// NewTrashCommand creates the trash command group.
func NewTrashCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Manage trashed customers and fiscal documents",
	}
	cmd.AddCommand(newTrashEmptyCommand(rootOpts))
	return cmd
}

func newTrashEmptyCommand(rootOpts *RootOptions) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Permanently delete trashed records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if only != "" && only != "customers" && only != "documents" {
				return fmt.Errorf("invalid --only %q: must be customers or documents", only)
			}
			return rootOpts.withContainer(cmd.Context(), func(c *app.Container) error {
				if only == "" || only == "customers" {
					n, err := c.Customers.EmptyTrash(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "customers: %d purged\n", n)
				}
				if only == "" || only == "documents" {
					n, err := c.Documents.EmptyTrash(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "documents: %d purged\n", n)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "limit to customers or documents")

	return cmd
}
