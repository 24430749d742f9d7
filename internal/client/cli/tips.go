package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carework/internal/client/models"
)

// Tips shows the tips recommended for the user.
func (a *App) Tips(ctx context.Context, _ []string) error {
	tips := a.svc.Tips.Recommended(ctx)
	if len(tips) == 0 {
		a.println("No tips right now")
		return nil
	}
	tw := newTable(a.out, "ID", "CATEGORY", "TITLE")
	for _, t := range tips {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, deref(t.Category), t.Title)
	}
	return tw.Flush()
}

func (a *App) Tip(ctx context.Context, args []string) error {
	id, err := oneArg(args)
	if err != nil {
		return err
	}
	t := a.svc.Tips.Get(ctx, id)
	if t == nil {
		return errNotFound
	}
	printTip(a, *t)
	return nil
}

func printTip(a *App, t models.Tip) {
	a.println(t.Title)
	if c := deref(t.Category); c != "" {
		a.printf("[%s]\n", c)
	}
	a.println(t.Description)
}
