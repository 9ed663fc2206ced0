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

func subscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"subscriptions", "sub"},
		Short:   "Track recurring subscriptions",
		Long:    `Add, list, and cancel recurring subscriptions so their cost shows up in your money insights.`,
	}

	cmd.AddCommand(addSubscriptionCmd())
	cmd.AddCommand(listSubscriptionsCmd())
	cmd.AddCommand(cancelSubscriptionCmd())

	return cmd
}

func addSubscriptionCmd() *cobra.Command {
	var (
		category    string
		cycle       string
		nextBilling string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Add a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			billingDay, err := parseDateArg(nextBilling)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			sub := model.Subscription{
				Name:            args[0],
				Amount:          amount,
				Category:        model.ParseExpenseCategory(category),
				BillingCycle:    model.ParseBillingCycle(cycle),
				NextBillingDate: billingDay,
				Active:          true,
			}

			id, err := store.AddSubscription(ctx, &sub)
			if err != nil {
				return fmt.Errorf("failed to add subscription: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tracking %s at ₹%.2f/%s (id %d)", sub.Name, amount, strings.ToLower(string(sub.BillingCycle)), id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "Fun", "spend category (Food, Rent, Transport, Fun, Other)")
	cmd.Flags().StringVar(&cycle, "cycle", "Monthly", "billing cycle (Monthly, Yearly)")
	cmd.Flags().StringVarP(&nextBilling, "next-billing", "b", "", "next billing date (YYYY-MM-DD, default today)")

	return cmd
}

func listSubscriptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			subs, err := store.GetActiveSubscriptions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get subscriptions: %w", err)
			}

			if len(subs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No active subscriptions. Use 'vita subscription add' to track one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Cycle"),
				headerStyle.Render("Next billing"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 12))

			var monthlyTotal float64
			for _, s := range subs {
				fmt.Fprintf(w, "%d\t%s\t₹%.2f\t%s\t%s\n", s.ID, s.Name, s.Amount, s.BillingCycle, s.NextBillingDate)
				monthlyTotal += s.MonthlyAmount()
			}

			fmt.Fprintf(w, "\t%s\t%s\t\t\n",
				cli.BoldStyle.Render("Monthly total"),
				cli.BoldStyle.Render(fmt.Sprintf("₹%.2f", monthlyTotal)))
			return nil
		},
	}
}

func cancelSubscriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a subscription",
		Long:  `Mark a subscription inactive. Its history is kept but it stops counting toward your recurring costs.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid subscription id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeactivateSubscription(ctx, id); err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cancelled subscription %d", id)))
			return nil
		},
	}
}
