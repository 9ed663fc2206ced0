package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all recorded data",
		Long: `Reset wipes every expense, subscription, task, goal, document, energy
entry and the profile. The database schema is kept, so the app is ready
to use again immediately.

This is a destructive operation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Confirm with user unless --force is used
			if !force {
				fmt.Fprintf(os.Stdout, "This will permanently delete all recorded data.\n")
				fmt.Fprintf(os.Stdout, "\nAre you sure you want to continue? [y/N]: ")

				var response string
				if _, err := fmt.Scanln(&response); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if response != "y" && response != "Y" {
					fmt.Fprintf(os.Stdout, "Reset canceled.\n")
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearAllData(ctx); err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("All data cleared. Run 'vita seed' for demo data or start logging fresh."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
