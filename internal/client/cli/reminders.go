package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/models"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (a *App) Reminders(ctx context.Context, _ []string) error {
	list := a.svc.Reminders.List(ctx)
	if len(list) == 0 {
		a.println("No reminders")
		return nil
	}
	tw := newTable(a.out, "ID", "ON", "TIME", "DAYS", "TITLE")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%s\n", r.ID, r.Enabled, r.Time, formatDays(r.DaysOfWeek), r.Title)
	}
	return tw.Flush()
}

func formatDays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(weekdays) {
			names = append(names, weekdays[d])
		}
	}
	return strings.Join(names, ",")
}

// parseDays reads "0,1,5" (0 is Sunday); an empty input means every day.
func parseDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		days = append(days, d)
	}
	return days, nil
}

func (a *App) AddReminder(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	at, err := getSimpleText(a.reader, "Time HH:MM", a.out)
	if err != nil {
		return err
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return fmt.Errorf("invalid time %q", at)
	}
	daysText, err := getSimpleText(a.reader, "Days 0-6, comma separated, 0 is Sunday (empty for every day)", a.out)
	if err != nil {
		return err
	}
	days, err := parseDays(daysText)
	if err != nil {
		return err
	}

	r, err := a.svc.Reminders.Create(ctx, models.CreateReminderRequest{Title: title, Time: at, DaysOfWeek: days})
	if err != nil {
		return err
	}
	a.printf("Reminder %s created\n", r.ID)
	return nil
}

// ToggleReminder flips the enabled flag of the reminder.
func (a *App) ToggleReminder(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	var cur *models.Reminder
	for _, r := range a.svc.Reminders.List(ctx) {
		if r.ID == id {
			cur = &r
			break
		}
	}
	if cur == nil {
		return errNotFound
	}

	enabled := !cur.Enabled
	r, err := a.svc.Reminders.Update(ctx, id, models.UpdateReminderRequest{Enabled: &enabled})
	if err != nil {
		return err
	}
	if r.Enabled {
		a.println("Reminder enabled")
	} else {
		a.println("Reminder disabled")
	}
	return nil
}

func (a *App) DeleteReminder(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	if !a.svc.Reminders.Delete(ctx, id) {
		return errNotFound
	}
	a.println("Deleted")
	return nil
}
