package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/client/services"
)

var errNotFound = errors.New("not found")

// Checkin records a full check-in.
func (a *App) Checkin(ctx context.Context, _ []string) error {
	mood, err := GetScore(a.reader, "Mood", 0, a.out)
	if err != nil {
		return err
	}
	stress, err := GetScore(a.reader, "Stress", 0, a.out)
	if err != nil {
		return err
	}
	sleep, err := GetScore(a.reader, "Sleep", 0, a.out)
	if err != nil {
		return err
	}
	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags, comma separated (optional)", a.out)
	if err != nil {
		return err
	}

	c, err := a.svc.Checkins.Create(ctx, models.CreateCheckinRequest{
		Mood: mood, Stress: stress, Sleep: sleep, Notes: notes, Tags: models.ParseTags(tags),
	})
	if err != nil {
		return err
	}
	a.printf("Check-in %s saved\n", c.ID)
	return nil
}

func (a *App) QuickCheckin(ctx context.Context, _ []string) error {
	mood, err := GetScore(a.reader, "Mood", 0, a.out)
	if err != nil {
		return err
	}
	c, err := a.svc.Checkins.CreateQuick(ctx, models.QuickCheckinRequest{Mood: mood})
	if err != nil {
		return err
	}
	a.printf("Check-in %s saved\n", c.ID)
	return nil
}

// History lists one page of check-ins. Cached domain data is dropped first
// so the list reflects the server.
func (a *App) History(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 1 {
		return errUsage
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errUsage
		}
		page = n
	}

	a.cache.PurgeAllExceptSession(ctx)
	a.showPage(ctx, page)
	return nil
}

// Refresh drops cached domain data and shows the first page again.
func (a *App) Refresh(ctx context.Context, _ []string) error {
	n := a.cache.PurgeAllExceptSession(ctx)
	a.printf("Cleared %d cached entries\n", n)
	a.showPage(ctx, 1)
	return nil
}

func (a *App) showPage(ctx context.Context, page int) {
	result := a.svc.Checkins.List(ctx, page, defaultPageSize)
	printCheckins(a.out, result.Data)
	if result.TotalPages > 0 {
		a.printf("Page %d of %d (%d total)\n", result.Page, result.TotalPages, result.TotalCount)
	}
}

func (a *App) ShowCheckin(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	c := a.svc.Checkins.Get(ctx, id)
	if c == nil {
		return errNotFound
	}
	printCheckin(a.out, *c)
	return nil
}

// EditCheckin prompts with the current values; empty answers keep them.
func (a *App) EditCheckin(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	cur := a.svc.Checkins.Get(ctx, id)
	if cur == nil {
		return errNotFound
	}

	mood, err := GetScore(a.reader, "Mood", cur.Mood, a.out)
	if err != nil {
		return err
	}
	stress, err := GetScore(a.reader, "Stress", cur.Stress, a.out)
	if err != nil {
		return err
	}
	sleep, err := GetScore(a.reader, "Sleep", cur.Sleep, a.out)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	req := models.UpdateCheckinRequest{Mood: &mood, Stress: &stress, Sleep: &sleep}
	if notes != "" {
		req.Notes = &notes
	}
	c, err := a.svc.Checkins.Update(ctx, id, req)
	if err != nil {
		return err
	}
	printCheckin(a.out, c)
	return nil
}

func (a *App) DeleteCheckin(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	if !a.svc.Checkins.Delete(ctx, id) {
		return errNotFound
	}
	a.println("Deleted")
	return nil
}

// Search asks for free text and an optional date range.
func (a *App) Search(ctx context.Context, _ []string) error {
	query, err := getSimpleText(a.reader, "Text (optional)", a.out)
	if err != nil {
		return err
	}
	from, err := a.readDate("From date YYYY-MM-DD (optional)")
	if err != nil {
		return err
	}
	to, err := a.readDate("To date YYYY-MM-DD (optional)")
	if err != nil {
		return err
	}

	printCheckins(a.out, a.svc.Checkins.Search(ctx, query, from, to))
	return nil
}

// readDate accepts an empty answer or a valid calendar date.
func (a *App) readDate(prompt string) (string, error) {
	for {
		text, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if text == "" {
			return "", nil
		}
		if _, err := time.Parse(services.DateLayout, text); err == nil {
			return text, nil
		}
		a.println("Please use the YYYY-MM-DD format")
	}
}
