package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze your money, tasks and goals",
		Long:  `Insights read what you have logged and tell you what it means. All of them are computed locally from your own data.`,
	}

	cmd.AddCommand(stabilityCmd())
	cmd.AddCommand(burnoutCmd())
	cmd.AddCommand(leaksCmd())
	cmd.AddCommand(savingsCmd())
	cmd.AddCommand(lifeLoadCmd())
	cmd.AddCommand(loadHistoryCmd())
	cmd.AddCommand(spendingCmd())

	return cmd
}

func stabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stability",
		Short: "Life stability score",
		Long:  `A 0-100 blend of money discipline and task discipline over the current month and the last 7 days.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			metrics, err := engine.StabilityScore(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute stability: %w", err)
			}

			lines := []string{
				fmt.Sprintf("Overall  %s %d/100  %s",
					cli.RenderHealthBar(metrics.Score, 20),
					metrics.Score,
					cli.StatusStyle(string(metrics.Label)).Render(string(metrics.Label))),
				fmt.Sprintf("Money    %s %d/100", cli.RenderHealthBar(metrics.MoneyScore, 20), metrics.MoneyScore),
				fmt.Sprintf("Tasks    %s %d/100", cli.RenderHealthBar(metrics.TaskScore, 20), metrics.TaskScore),
			}

			fmt.Println(cli.RenderBox(cli.ChartIcon+" Stability", strings.Join(lines, "\n")))
			return nil
		},
	}
}

func burnoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burnout",
		Short: "Burnout early-warning check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			now := time.Now()
			stats, err := engine.WeeklyStats(ctx, now)
			if err != nil {
				return fmt.Errorf("failed to compute weekly stats: %w", err)
			}
			insights, err := engine.BurnoutInsights(ctx, now)
			if err != nil {
				return fmt.Errorf("failed to compute burnout insights: %w", err)
			}

			fmt.Println(cli.FormatTitle("Burnout check"))
			fmt.Printf("Tracked days: %d   Heavy days: %d   Avg load: %.0f min   Avg completion: %d%%\n\n",
				stats.DaysWithData, stats.HeavyDays, stats.AvgLoad, stats.AvgCompletionRate)

			if len(insights) == 0 {
				fmt.Println(cli.FormatSuccess("No burnout signals this week."))
				return nil
			}
			fmt.Println(cli.RenderList(insights))
			return nil
		},
	}
}

func leaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaks",
		Short: "Find where money slips away",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := engine.MoneyLeaks(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to detect money leaks: %w", err)
			}

			status := cli.StatusStyle(string(report.Status)).Render(string(report.Status))
			fmt.Println(cli.FormatTitle("Money leaks"))
			fmt.Printf("Leak score: %s %d/100  %s\n\n", cli.RenderLoadBar(report.Score, 20), report.Score, status)

			if len(report.Leaks) == 0 {
				fmt.Println(cli.FormatSuccess("No leaks detected this month."))
			} else {
				for _, leak := range report.Leaks {
					fmt.Printf("%s %s\n  %s\n",
						cli.StatusStyle(string(leak.Severity)).Render("["+string(leak.Severity)+"]"),
						cli.BoldStyle.Render(leak.Title),
						leak.Description)
				}
			}

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render("Next step: ") + report.ActionableSuggestion)
			return nil
		},
	}
}

func savingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "savings",
		Short: "Needs, wants and savings potential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := engine.Savings(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute savings plan: %w", err)
			}

			lines := []string{
				fmt.Sprintf("Income            ₹%.2f", report.Income),
				fmt.Sprintf("Needs             ₹%.2f", report.Needs),
				fmt.Sprintf("Wants             ₹%.2f", report.Wants),
				fmt.Sprintf("Actual savings    ₹%.2f", report.ActualSavings),
				fmt.Sprintf("Target savings    ₹%.2f", report.SavingsPotential),
				fmt.Sprintf("Health            %s %d/100  %s",
					cli.RenderHealthBar(report.HealthScore, 20),
					report.HealthScore,
					cli.StatusStyle(string(report.Status)).Render(string(report.Status))),
			}

			fmt.Println(cli.RenderBox("💰 Savings", strings.Join(lines, "\n")))
			if len(report.Insights) > 0 {
				fmt.Println()
				fmt.Println(cli.RenderList(report.Insights))
			}
			return nil
		},
	}
}

func lifeLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lifeload",
		Short: "Combined life pressure from tasks, goals and money",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := engine.LifeLoad(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute life load: %w", err)
			}

			lines := []string{
				fmt.Sprintf("Load    %s %d/100  %s",
					cli.RenderLoadBar(report.Score, 20),
					report.Score,
					cli.StatusStyle(string(report.Status)).Render(string(report.Status))),
				fmt.Sprintf("Tasks %.0f  Goals %.0f  Money %.0f",
					report.Breakdown.TaskScore,
					report.Breakdown.GoalScore,
					report.Breakdown.MoneyScore),
			}
			fmt.Println(cli.RenderBox("⚖️  Life load", strings.Join(lines, "\n")))

			if len(report.Contributors) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("What is driving it"))
				fmt.Println(cli.RenderList(report.Contributors))
			}
			if len(report.Suggestions) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Try this"))
				fmt.Println(cli.RenderList(report.Suggestions))
			}
			return nil
		},
	}
}

func loadHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-history",
		Short: "Task load over the last 7 days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			points, err := engine.LoadHistory(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute load history: %w", err)
			}

			fmt.Println(cli.FormatTitle("Load, last 7 days"))
			for _, p := range points {
				bar := cli.RenderLoadBar(p.Effort*100/300, 20)
				fmt.Printf("%s  %s %4d min\n", p.Label, bar, p.Effort)
			}
			return nil
		},
	}
}

func spendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spending",
		Short: "Category breakdown for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := engine.MonthCategoryStats(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to compute category stats: %w", err)
			}

			if len(stats) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No spending this month yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Spending by category"))
			for _, s := range stats {
				fmt.Printf("%-10s %s ₹%9.2f (%.1f%%)\n",
					s.Category,
					cli.RenderLoadBar(int(s.Percentage), 20),
					s.Total,
					s.Percentage)
			}
			return nil
		},
	}
}
