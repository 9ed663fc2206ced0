package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vitahq/vita/internal/cli"
	"github.com/vitahq/vita/internal/model"
	"github.com/vitahq/vita/internal/service"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a month of demo data",
		Long:  `Fill the database with realistic demo data so every insight has something to chew on. Existing data is kept; run 'vita reset' first for a clean slate.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := seedDemoData(ctx, store, time.Now()); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Demo data loaded. Try 'vita insights stability' or 'vita insights leaks'."))
			return nil
		},
	}
}

func seedDemoData(ctx context.Context, store service.Storage, now time.Time) error {
	day := func(daysAgo int) string {
		return model.Day(now.AddDate(0, 0, -daysAgo))
	}

	if err := store.SetMonthlySalary(ctx, 50000); err != nil {
		return err
	}

	expenses := []model.Expense{
		{Amount: 12000, Category: model.CategoryRent, Date: day(3), Note: "flat rent", PaymentMethod: model.PaymentUPI},
		{Amount: 1800, Category: model.CategoryFood, Date: day(1), Note: "groceries", PaymentMethod: model.PaymentCard},
		{Amount: 240, Category: model.CategoryFood, Date: day(1), Note: "Zomato", PaymentMethod: model.PaymentUPI},
		{Amount: 180, Category: model.CategoryFood, Date: day(2), Note: "Zomato", PaymentMethod: model.PaymentUPI},
		{Amount: 260, Category: model.CategoryFood, Date: day(2), Note: "Swiggy", PaymentMethod: model.PaymentUPI},
		{Amount: 220, Category: model.CategoryFood, Date: day(4), Note: "Zomato", PaymentMethod: model.PaymentUPI},
		{Amount: 150, Category: model.CategoryTransport, Date: day(4), Note: "Uber", PaymentMethod: model.PaymentUPI},
		{Amount: 190, Category: model.CategoryTransport, Date: day(5), Note: "Uber", PaymentMethod: model.PaymentUPI},
		{Amount: 2500, Category: model.CategoryFun, Date: day(6), Note: "concert tickets", PaymentMethod: model.PaymentCard},
		{Amount: 600, Category: model.CategoryFun, Date: day(7), Note: "movie night", PaymentMethod: model.PaymentUPI},
		{Amount: 900, Category: model.CategoryOther, Date: day(8), Note: "pharmacy", PaymentMethod: model.PaymentCash},
	}
	for _, e := range expenses {
		if _, err := store.AddExpense(ctx, &e); err != nil {
			return err
		}
	}

	subs := []model.Subscription{
		{Name: "Netflix", Amount: 649, Category: model.CategoryFun, BillingCycle: model.BillingMonthly, NextBillingDate: day(-12), Active: true},
		{Name: "Spotify", Amount: 119, Category: model.CategoryFun, BillingCycle: model.BillingMonthly, NextBillingDate: day(-20), Active: true},
		{Name: "Gym", Amount: 1200, Category: model.CategoryOther, BillingCycle: model.BillingMonthly, NextBillingDate: day(-5), Active: true},
	}
	for _, s := range subs {
		if _, err := store.AddSubscription(ctx, &s); err != nil {
			return err
		}
	}

	tasks := []struct {
		task model.Task
		done bool
	}{
		{model.Task{Title: "Finish quarterly review", Date: day(1), Priority: model.PriorityHigh, Category: model.TaskWork, EstimatedEffort: 120}, true},
		{model.Task{Title: "Plan sprint backlog", Date: day(1), Priority: model.PriorityMedium, Category: model.TaskWork, EstimatedEffort: 60}, false},
		{model.Task{Title: "Call the bank", Date: day(2), Priority: model.PriorityMedium, Category: model.TaskAdmin, EstimatedEffort: 30}, true},
		{model.Task{Title: "Gym session", Date: day(2), Priority: model.PriorityLow, Category: model.TaskPersonal, EstimatedEffort: 90}, true},
		{model.Task{Title: "Prepare client demo", Date: day(3), Priority: model.PriorityHigh, Category: model.TaskWork, EstimatedEffort: 180}, true},
		{model.Task{Title: "Grocery run", Date: day(4), Priority: model.PriorityLow, Category: model.TaskPersonal, EstimatedEffort: 45}, true},
		{model.Task{Title: "File insurance claim", Date: day(5), Priority: model.PriorityMedium, Category: model.TaskAdmin, EstimatedEffort: 60}, false},
		{model.Task{Title: "Write design doc", Date: day(0), Priority: model.PriorityHigh, Category: model.TaskWork, EstimatedEffort: 150}, false},
	}
	for _, t := range tasks {
		id, err := store.AddTask(ctx, &t.task)
		if err != nil {
			return err
		}
		if t.done {
			if err := store.SetTaskCompleted(ctx, id, true); err != nil {
				return err
			}
		}
	}

	goals := []model.Goal{
		{Title: "Build a 3-month emergency fund", Category: "Finance", TargetDate: day(-60), Progress: 40, Status: model.GoalActive},
		{Title: "Run a 10k", Category: "Health", TargetDate: day(-5), Progress: 70, Status: model.GoalActive},
		{Title: "Renew passport", Category: "Admin", TargetDate: day(10), Progress: 20, Status: model.GoalActive},
	}
	for _, g := range goals {
		if _, err := store.AddGoal(ctx, &g); err != nil {
			return err
		}
	}

	docs := []model.Document{
		{Title: "Aadhaar card", Category: model.DocIdentity, StorageRef: "locker, top drawer"},
		{Title: "Degree certificate", Category: model.DocEducation, StorageRef: "blue folder"},
		{Title: "Health insurance policy", Category: model.DocFinance, StorageRef: "email + drive", ExpiryDate: day(-25)},
	}
	for _, d := range docs {
		if _, err := store.AddDocument(ctx, &d); err != nil {
			return err
		}
	}

	levels := []model.EnergyLevel{model.EnergyOkay, model.EnergyHigh, model.EnergyLow, model.EnergyOkay, model.EnergyHigh}
	for i, level := range levels {
		if err := store.LogEnergy(ctx, day(i), level); err != nil {
			return err
		}
	}

	return nil
}
