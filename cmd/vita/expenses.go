package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"expenses", "exp"},
		Short:   "Track daily expenses",
		Long:    `Add, list, and delete expenses. Each expense has an amount, category, date, payment method and an optional note.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		category string
		date     string
		note     string
		payment  string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			day, err := parseDateArg(date)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expense := model.Expense{
				Amount:        amount,
				Category:      model.ParseExpenseCategory(category),
				Date:          day,
				Note:          note,
				PaymentMethod: model.ParsePaymentMethod(payment),
			}

			id, err := store.AddExpense(ctx, &expense)
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded ₹%.2f under %s (id %d)", amount, expense.Category, id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "Other", "category (Food, Rent, Transport, Fun, Other)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note, e.g. the merchant")
	cmd.Flags().StringVarP(&payment, "payment", "p", "UPI", "payment method (UPI, Cash, Card)")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			monthKey, err := currentMonthArg(month)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.GetExpensesByMonth(ctx, monthKey)
			if err != nil {
				return fmt.Errorf("failed to get expenses: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No expenses recorded for %s. Use 'vita expense add' to record one.", monthKey)))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Date"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Category"),
				headerStyle.Render("Payment"),
				headerStyle.Render("Note"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 24))

			var total float64
			for _, e := range expenses {
				note := e.Note
				if note == "" {
					note = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(no note)")
				}
				fmt.Fprintf(w, "%d\t%s\t₹%.2f\t%s\t%s\t%s\n", e.ID, e.Date, e.Amount, e.Category, e.PaymentMethod, note)
				total += e.Amount
			}

			fmt.Fprintf(w, "\t\t%s\t\t\t\n", cli.BoldStyle.Render(fmt.Sprintf("₹%.2f", total)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to list (YYYY-MM, default current)")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteExpense(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %d", id)))
			return nil
		},
	}
}
