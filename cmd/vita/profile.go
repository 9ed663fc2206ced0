package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/model"
)

func salaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Manage your monthly salary",
		Long:  `Set or show the monthly salary. Money insights compare spending against it; with no salary set, ratio-based checks are skipped.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", args[0], err)
			}
			if amount <= 0 {
				return fmt.Errorf("salary must be positive")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetMonthlySalary(ctx, amount); err != nil {
				return fmt.Errorf("failed to set salary: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Monthly salary set to ₹%.2f", amount)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the monthly salary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			salary, err := store.GetMonthlySalary(ctx)
			if err != nil {
				return fmt.Errorf("failed to get salary: %w", err)
			}

			if salary <= 0 {
				fmt.Println(cli.SubtleStyle.Render("No salary set. Use 'vita salary set' so money insights can use it."))
				return nil
			}
			fmt.Printf("Monthly salary: ₹%.2f\n", salary)
			return nil
		},
	})

	return cmd
}

func energyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Log how you feel each day",
		Long:  `A one-touch daily energy log. Levels are 1 (low), 3 (okay), and 5 (high). Logging twice on a day overwrites the earlier entry.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "log <level>",
		Short: "Log today's energy (1, 3 or 5)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid energy level %q: %w", args[0], err)
			}
			level, err := model.ParseEnergyLevel(value)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			today := model.Day(time.Now())
			if err := store.LogEnergy(ctx, today, level); err != nil {
				return fmt.Errorf("failed to log energy: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Energy logged for %s: %s", today, level.Label())))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show today's energy entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			today := model.Day(time.Now())
			entry, err := store.GetEnergy(ctx, today)
			if err != nil {
				return fmt.Errorf("failed to get energy: %w", err)
			}

			if entry == nil {
				fmt.Println(cli.SubtleStyle.Render("No energy logged today. Use 'vita energy log'."))
				return nil
			}
			fmt.Printf("Energy on %s: %s\n", entry.Date, entry.Level.Label())
			return nil
		},
	})

	return cmd
}

func premiumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "premium",
		Short:  "Toggle premium features",
		Hidden: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "on",
		Short: "Enable premium",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setPremium(cmd, true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "off",
		Short: "Disable premium",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setPremium(cmd, false)
		},
	})

	return cmd
}

func setPremium(cmd *cobra.Command, enabled bool) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetPremium(ctx, enabled); err != nil {
		return fmt.Errorf("failed to update premium flag: %w", err)
	}

	if enabled {
		fmt.Println(cli.FormatSuccess(cli.ProIcon + " Premium enabled"))
	} else {
		fmt.Println(cli.FormatSuccess("Premium disabled"))
	}
	return nil
}
