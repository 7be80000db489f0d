package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"paulocell_pdv/internal/app"
	"paulocell_pdv/internal/usecase"

	"github.com/spf13/cobra"
)

// NewBackupCommand creates the backup command.
func NewBackupCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write every collection as one JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withContainer(cmd.Context(), func(c *app.Container) error {
				snap, err := c.Backup.Export(cmd.Context())
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					return writeSnapshot(cmd.OutOrStdout(), snap)
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := writeSnapshot(f, snap); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d keys to %s\n", len(snap), output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// NewRestoreCommand creates the restore command.
func NewRestoreCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace the stored collections with a backup file",
		Long: `Replace the stored collections with a backup file.

Only keys present in the file are written; the rest are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var snap usecase.Snapshot
			if err := json.Unmarshal(raw, &snap); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			return rootOpts.withContainer(cmd.Context(), func(c *app.Container) error {
				restored, err := c.Backup.Restore(cmd.Context(), snap)
				if err != nil {
					return err
				}
				for _, k := range restored {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			})
		},
	}

	return cmd
}

func writeSnapshot(w io.Writer, snap usecase.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
