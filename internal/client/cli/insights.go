package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/client/services"
)

const monthLayout = "2006-01"

var errNoData = fmt.Errorf("%w: no data for this period", errNotFound)

func (a *App) userID(ctx context.Context) string {
	id, _ := a.svc.Auth.UserID(ctx)
	return id
}

func (a *App) Weekly(ctx context.Context, args []string) error {
	day, err := oneArg(args)
	if err != nil {
		return err
	}
	if _, err := time.Parse(services.DateLayout, day); err != nil {
		return errUsage
	}

	r := a.svc.Reports.Weekly(ctx, day, a.userID(ctx))
	if r == nil {
		return errNoData
	}
	a.printf("Week %s .. %s\n", r.WeekStart, r.WeekEnd)
	printAverages(a.out, "Averages", r.Averages)
	printDaily(a.out, r.DailyData)
	return nil
}

func (a *App) Monthly(ctx context.Context, args []string) error {
	month, err := oneArg(args)
	if err != nil {
		return err
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		return errUsage
	}

	r := a.svc.Reports.Monthly(ctx, month, a.userID(ctx))
	if r == nil {
		return errNoData
	}
	a.printf("Month %s\n", r.Month)
	printAverages(a.out, "Averages", r.Averages)
	printAverages(a.out, "Change vs previous month", r.ComparisonWithPreviousMonth)
	a.printf("Trends: mood %s, stress %s, sleep %s\n", r.Trends.Mood, r.Trends.Stress, r.Trends.Sleep)
	if r.BestDay.Date != "" {
		a.printf("Best day %s, worst day %s\n", r.BestDay.Date, r.WorstDay.Date)
	}
	printDaily(a.out, r.DailyData)
	return nil
}

// Trends shows the trend analysis; a missing analysis means there is not
// enough history yet.
func (a *App) Trends(ctx context.Context, args []string) error {
	period := models.PeriodMonth
	switch len(args) {
	case 0:
	case 1:
		period = args[0]
	default:
		return errUsage
	}
	switch period {
	case models.PeriodWeek, models.PeriodMonth, models.PeriodYear:
	default:
		return errUsage
	}

	t := a.svc.Insights.Trends(ctx, period)
	if t == nil {
		a.println("Not enough check-ins yet to show trends")
		return nil
	}
	a.printf("Overall: %s (%s)\n", t.Trend, t.Period)
	a.printf("Mood %+.2f, stress %+.2f, sleep %+.2f\n", t.MoodTrend, t.StressTrend, t.SleepTrend)
	if t.MostStressfulDay != "" {
		a.printf("Most stressful day: %s\n", t.MostStressfulDay)
	}
	for _, alert := range t.Alerts {
		a.println("!", alert)
	}
	return nil
}

func (a *App) Streak(ctx context.Context, _ []string) error {
	s := a.svc.Insights.Streak(ctx)
	a.printf("Current streak: %d days (longest %d)\n", s.Current, s.Longest)
	if d := deref(s.LastCheckinDate); d != "" {
		a.printf("Last check-in: %s\n", d)
	}
	return nil
}

func (a *App) Compare(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	c := a.svc.Insights.Compare(ctx, args[0], args[1])
	if c == nil {
		return errNoData
	}
	printAverages(a.out, c.Period1.Label, c.Period1.Averages)
	printAverages(a.out, c.Period2.Label, c.Period2.Averages)
	printAverages(a.out, "Difference", c.Differences)
	if c.Improvement {
		a.println("Things are getting better")
	}
	return nil
}

func (a *App) Recommendations(ctx context.Context, _ []string) error {
	list := a.svc.Insights.Recommendations(ctx)
	if len(list) == 0 {
		a.println("No recommendations right now")
		return nil
	}
	tw := newTable(a.out, "PRIORITY", "TYPE", "TITLE")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Priority, r.Type, r.Title)
	}
	return tw.Flush()
}
