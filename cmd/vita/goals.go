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

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Track long-term goals",
		Long:    `Add goals with a target date, update progress, and spot the ones slipping past their deadline.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(progressGoalCmd())
	cmd.AddCommand(deleteGoalCmd())
	cmd.AddCommand(goalRisksCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		category string
		target   string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			targetDay, err := parseDateArg(target)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goal := model.Goal{
				Title:      args[0],
				Category:   category,
				TargetDate: targetDay,
				Notes:      notes,
				Status:     model.GoalActive,
			}

			id, err := store.AddGoal(ctx, &goal)
			if err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added goal %q due %s (id %d)", goal.Title, targetDay, id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "Personal", "goal category (free text)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "optional notes")

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			goals, err := store.GetGoals(ctx)
			if err != nil {
				return fmt.Errorf("failed to get goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No goals yet. Use 'vita goal add' to set one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Title"),
				headerStyle.Render("Target"),
				headerStyle.Render("Progress"),
				headerStyle.Render("Status"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10))

			for _, g := range goals {
				status := cli.StatusStyle(string(g.Status)).Render(string(g.Status))
				fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%s\n", g.ID, g.Title, g.TargetDate, g.Progress, status)
			}

			return nil
		},
	}
}

func progressGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Update goal progress (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}
			progress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid progress %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateGoalProgress(ctx, id, progress); err != nil {
				return fmt.Errorf("failed to update goal: %w", err)
			}

			if progress >= 100 {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal %d completed! 🎉", id)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal %d at %d%%", id, progress)))
			}
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteGoal(ctx, id); err != nil {
				return fmt.Errorf("failed to delete goal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted goal %d", id)))
			return nil
		},
	}
}

func goalRisksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "risks",
		Short: "Show goals past their target date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			risks, err := engine.GoalRisks(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("failed to detect goal risks: %w", err)
			}

			if len(risks) == 0 {
				fmt.Println(cli.FormatSuccess("No goals at risk. Keep going!"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Goals at risk"))
			fmt.Println(cli.RenderList(risks))
			return nil
		},
	}
}
