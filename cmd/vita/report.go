package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/insight"
	"github.com/vitahq/vita/internal/model"
)

func reportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly financial report",
		Long: `The monthly report sums up the month's money story. It unlocks in the
last 7 days of the month, when there is enough of the month to judge.
Use --force to peek early.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			if !insight.ReportUnlocked(now) && !force {
				daysLeft := insight.DaysLeftInMonth(now)
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
					"%s The %s report unlocks in %d day(s), near the end of the month. Use --force to peek.",
					cli.LockIcon, model.Month(now), daysLeft-7)))
				return nil
			}

			store, engine, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := engine.FinancialReport(ctx, now)
			if err != nil {
				return fmt.Errorf("failed to compose report: %w", err)
			}

			premium, err := store.GetPremium(ctx)
			if err != nil {
				return fmt.Errorf("failed to read premium flag: %w", err)
			}

			title := "Monthly report, " + model.Month(now)
			if premium {
				title = cli.ProIcon + " " + title
			}

			lines := []string{
				report.Summary,
				"Status: " + cli.StatusStyle(string(report.Status)).Render(string(report.Status)),
			}
			fmt.Println(cli.RenderBox(title, strings.Join(lines, "\n")))

			if len(report.Insights) > 0 {
				fmt.Println()
				fmt.Println(cli.RenderList(report.Insights))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "show the report even if it has not unlocked yet")

	return cmd
}
