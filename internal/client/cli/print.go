package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/carework/internal/client/models"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printCheckins(w io.Writer, list []models.Checkin) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No check-ins")
		return
	}
	tw := newTable(w, "ID", "DATE", "MOOD", "STRESS", "SLEEP", "TAGS")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", c.ID, c.CreatedAt, c.Mood, c.Stress, c.Sleep, strings.Join(c.Tags, ","))
	}
	_ = tw.Flush()
}

func printCheckin(w io.Writer, c models.Checkin) {
	fmt.Fprintf(w, "ID:     %s\n", c.ID)
	fmt.Fprintf(w, "Date:   %s\n", c.CreatedAt)
	fmt.Fprintf(w, "Mood:   %d\n", c.Mood)
	fmt.Fprintf(w, "Stress: %d\n", c.Stress)
	fmt.Fprintf(w, "Sleep:  %d\n", c.Sleep)
	if n := deref(c.Notes); n != "" {
		fmt.Fprintf(w, "Notes:  %s\n", n)
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(w, "Tags:   %s\n", strings.Join(c.Tags, ", "))
	}
}

func printAverages(w io.Writer, label string, avg models.Averages) {
	fmt.Fprintf(w, "%s: mood %.1f, stress %.1f, sleep %.1f\n", label, avg.Mood, avg.Stress, avg.Sleep)
}

func printDaily(w io.Writer, days []models.DailyData) {
	if len(days) == 0 {
		return
	}
	tw := newTable(w, "DATE", "MOOD", "STRESS", "SLEEP")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\n", d.Date, d.Mood, d.Stress, d.Sleep)
	}
	_ = tw.Flush()
}
