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

func taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Plan and track daily tasks",
		Long:    `Add, list, complete and delete tasks. Each task carries an effort estimate in minutes that feeds the daily load and burnout insights.`,
	}

	cmd.AddCommand(addTaskCmd())
	cmd.AddCommand(listTasksCmd())
	cmd.AddCommand(doneTaskCmd())
	cmd.AddCommand(deleteTaskCmd())

	return cmd
}

func addTaskCmd() *cobra.Command {
	var (
		date     string
		priority string
		category string
		effort   int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			day, err := parseDateArg(date)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			task := model.Task{
				Title:           args[0],
				Date:            day,
				Priority:        model.ParseTaskPriority(priority),
				Category:        model.ParseTaskCategory(category),
				EstimatedEffort: effort,
			}

			id, err := store.AddTask(ctx, &task)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q for %s, %d min (id %d)", task.Title, day, effort, id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "Medium", "priority (Low, Medium, High)")
	cmd.Flags().StringVarP(&category, "category", "c", "Personal", "category (Work, Personal, Admin)")
	cmd.Flags().IntVarP(&effort, "effort", "e", 30, "estimated effort in minutes")

	return cmd
}

func listTasksCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a day with the day's load",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			day, err := parseDateArg(date)
			if err != nil {
				return err
			}

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tasks, err := store.GetTasksByDate(ctx, day)
			if err != nil {
				return fmt.Errorf("failed to get tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No tasks for %s. Use 'vita task add' to plan one.", day)))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Done"),
				headerStyle.Render("Title"),
				headerStyle.Render("Priority"),
				headerStyle.Render("Category"),
				headerStyle.Render("Effort"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 4),
				strings.Repeat("-", 24),
				strings.Repeat("-", 8),
				strings.Repeat("-", 8),
				strings.Repeat("-", 6))

			for _, t := range tasks {
				done := " "
				if t.Completed {
					done = cli.SuccessIcon
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d min\n", t.ID, done, t.Title, t.Priority, t.Category, t.EstimatedEffort)
			}
			w.Flush()

			load, err := engine.DailyLoad(ctx, day)
			if err != nil {
				return fmt.Errorf("failed to compute daily load: %w", err)
			}

			style := cli.StatusStyle(string(load.LoadLevel))
			fmt.Printf("\n%s %s (%d min planned, %d%% done)\n",
				style.Render(string(load.LoadLevel)),
				load.StatusMessage,
				load.TotalEffort,
				load.CompletionRate)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD, default today)")

	return cmd
}

func doneTaskCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetTaskCompleted(ctx, id, !undo); err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			if undo {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Reopened task %d", id)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Completed task %d", id)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "mark the task as not completed instead")

	return cmd
}

func deleteTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTask(ctx, id); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted task %d", id)))
			return nil
		},
	}
}
