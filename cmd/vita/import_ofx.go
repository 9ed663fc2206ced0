package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/model"
	"github.com/vitahq/vita/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import expenses from OFX/QFX files",
		Long: `Import debit transactions from OFX or QFX (Quicken) files exported from
your bank. Credits are skipped; each debit becomes an expense with a
category guessed from the transaction description.

Examples:
  # Import single file
  vita import-ofx ~/Downloads/statement_jan.qfx

  # Import everything from a downloads folder
  vita import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					// If no glob matches, check if it's a direct file
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}

			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			slog.Info("🌿 Importing OFX files...",
				"file_count", len(allFiles),
				"dry_run", dryRun)

			parser := ofx.NewParser()

			// Track expenses across files, deduplicated on date+amount+note
			var allExpenses []model.Expense
			seen := make(map[string]bool)

			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("Failed to open file",
						"file", filePath,
						"error", err)
					continue
				}

				expenses, err := parser.ParseFile(f)
				f.Close()

				if err != nil {
					slog.Error("Failed to parse OFX file",
						"file", filePath,
						"error", err)
					continue
				}

				added := 0
				for _, e := range expenses {
					key := fmt.Sprintf("%s|%.2f|%s", e.Date, e.Amount, e.NormalizedNote())
					if seen[key] {
						continue
					}
					seen[key] = true
					allExpenses = append(allExpenses, e)
					added++
				}

				slog.Info("Processed file",
					"file", filepath.Base(filePath),
					"debits_found", len(expenses),
					"added", added,
					"duplicates", len(expenses)-added)
			}

			if len(allExpenses) == 0 {
				slog.Warn("No debit transactions found in any file")
				return nil
			}

			if dryRun {
				var total float64
				for _, e := range allExpenses {
					total += e.Amount
				}
				fmt.Printf("\nWould import %d expense(s) totalling ₹%.2f:\n", len(allExpenses), total)
				for _, e := range allExpenses {
					fmt.Printf("  %s  ₹%9.2f  %-10s %s\n", e.Date, e.Amount, e.Category, e.Note)
				}
				slog.Info("🔍 Dry run complete - no data saved")
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.NewOptions(len(allExpenses),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing expenses...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			saved := 0
			for _, e := range allExpenses {
				if _, err := store.AddExpense(ctx, &e); err != nil {
					slog.Error("Failed to save expense",
						"date", e.Date,
						"amount", e.Amount,
						"error", err)
					continue
				}
				saved++
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expense(s) from %d file(s)", saved, len(allFiles))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}
