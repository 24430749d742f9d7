package cli

import (
	"context"
	"fmt"
)

// Achievements lists unlocked achievements first, then the ones in progress.
func (a *App) Achievements(ctx context.Context, _ []string) error {
	list := a.svc.Achievements.List(ctx)
	if len(list) == 0 {
		a.println("No achievements yet")
		return nil
	}
	tw := newTable(a.out, "STATUS", "CATEGORY", "TITLE")
	for _, pass := range []bool{true, false} {
		for _, ach := range list {
			if ach.Unlocked() != pass {
				continue
			}
			status := fmt.Sprintf("%.0f%%", ach.Progress)
			if pass {
				status = "unlocked"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", status, ach.Category, ach.Title)
		}
	}
	return tw.Flush()
}
