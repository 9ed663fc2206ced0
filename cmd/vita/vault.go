package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/model"
)

func vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Keep track of important documents",
		Long: `The vault is a registry of your important documents: IDs, certificates,
policies. It stores where each document lives, not the document itself,
and scores how prepared you are for the day you suddenly need one.`,
	}

	cmd.AddCommand(addDocumentCmd())
	cmd.AddCommand(listDocumentsCmd())
	cmd.AddCommand(deleteDocumentCmd())
	cmd.AddCommand(preparednessCmd())

	return cmd
}

func addDocumentCmd() *cobra.Command {
	var (
		category   string
		storageRef string
		expiry     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Register a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if expiry != "" {
				if _, err := model.ParseDay(expiry); err != nil {
					return fmt.Errorf("invalid expiry date %q (want YYYY-MM-DD): %w", expiry, err)
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			doc := model.Document{
				Title:      args[0],
				Category:   model.ParseDocumentCategory(category),
				StorageRef: storageRef,
				ExpiryDate: expiry,
			}

			id, err := store.AddDocument(ctx, &doc)
			if err != nil {
				return fmt.Errorf("failed to add document: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Registered %q under %s (id %d)", doc.Title, doc.Category, id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "Other", "category (Identity, Education, Work, Finance, Other)")
	cmd.Flags().StringVarP(&storageRef, "ref", "r", "", "where the document lives (drawer, drive link, locker)")
	cmd.Flags().StringVarP(&expiry, "expiry", "x", "", "expiry date if any (YYYY-MM-DD)")

	return cmd
}

func listDocumentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			docs, err := store.GetDocuments(ctx)
			if err != nil {
				return fmt.Errorf("failed to get documents: %w", err)
			}

			if len(docs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("The vault is empty. Use 'vita vault add' to register a document."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Title"),
				headerStyle.Render("Category"),
				headerStyle.Render("Location"),
				headerStyle.Render("Expiry"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10))

			today := model.Day(time.Now())
			for _, d := range docs {
				loc := d.StorageRef
				if loc == "" {
					loc = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(unknown)")
				}
				expiry := d.ExpiryDate
				if expiry == "" {
					expiry = "-"
				} else if expiry < today {
					expiry = cli.DangerStyle.Render(expiry + " (expired)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.Title, d.Category, loc, expiry)
			}

			return nil
		},
	}
}

func deleteDocumentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a document from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid document id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteDocument(ctx, id); err != nil {
				return fmt.Errorf("failed to delete document: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed document %d", id)))
			return nil
		},
	}
}

func preparednessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Score how prepared your vault is",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := engine.Preparedness(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute preparedness: %w", err)
			}

			var lines []string
			lines = append(lines, fmt.Sprintf("Preparedness score: %s %d/100", cli.RenderHealthBar(report.Score, 20), report.Score))
			if len(report.MissingEssentials) == 0 {
				lines = append(lines, cli.FormatSuccess("All essential categories covered."))
			} else {
				var names []string
				for _, c := range report.MissingEssentials {
					names = append(names, string(c))
				}
				lines = append(lines, cli.FormatWarning("Missing: "+strings.Join(names, ", ")))
			}
			if report.ExpiredCount > 0 {
				lines = append(lines, cli.FormatError(fmt.Sprintf("%d document(s) expired", report.ExpiredCount)))
			}
			if report.ExpiringSoonCount > 0 {
				lines = append(lines, cli.FormatWarning(fmt.Sprintf("%d document(s) expiring within 30 days", report.ExpiringSoonCount)))
			}

			fmt.Println(cli.RenderBox(cli.VaultIcon+" Vault check", strings.Join(lines, "\n")))
			return nil
		},
	}
}
