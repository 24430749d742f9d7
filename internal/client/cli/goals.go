package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/carework/internal/client/models"
)

func (a *App) Goals(ctx context.Context, _ []string) error {
	goals := a.svc.Goals.List(ctx)
	if len(goals) == 0 {
		a.println("No goals yet")
		return nil
	}
	tw := newTable(a.out, "ID", "STATUS", "TYPE", "PROGRESS", "TITLE")
	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g/%g\t%s\n", g.ID, g.Status, g.Type, g.CurrentValue, g.TargetValue, g.Title)
	}
	return tw.Flush()
}

func (a *App) AddGoal(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (mood, stress, sleep, checkins)", a.out)
	if err != nil {
		return err
	}
	target, err := a.readNumber("Target value")
	if err != nil {
		return err
	}
	deadline, err := a.readDate("Deadline YYYY-MM-DD (optional)")
	if err != nil {
		return err
	}

	g, err := a.svc.Goals.Create(ctx, models.CreateGoalRequest{Title: title, Type: kind, TargetValue: target, Deadline: deadline})
	if err != nil {
		return err
	}
	a.printf("Goal %s created\n", g.ID)
	return nil
}

func (a *App) readNumber(prompt string) (float64, error) {
	for {
		text, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			return v, nil
		}
		a.println("Please enter a positive number")
	}
}

func (a *App) GoalProgress(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	p := a.svc.Goals.Progress(ctx, id)
	if p == nil {
		return errNotFound
	}
	a.printf("%g of %g (%.0f%%)\n", p.CurrentValue, p.TargetValue, p.Percentage)
	if p.DaysRemaining != nil {
		a.printf("%d days remaining\n", *p.DaysRemaining)
	}
	if p.OnTrack {
		a.println("On track")
	} else {
		a.println("Behind schedule")
	}
	return nil
}

func (a *App) DeleteGoal(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	if !a.svc.Goals.Delete(ctx, id) {
		return errNotFound
	}
	a.println("Deleted")
	return nil
}
