package handler

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// dateLabel describes an event date relative to now: Today, Tomorrow, a day
// count within a week either way, otherwise the calendar date.
func dateLabel(d, now time.Time) string {
	days := int(math.Ceil(d.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 0 && days <= 7:
		return fmt.Sprintf("%dd", days)
	case days < 0 && days >= -7:
		return fmt.Sprintf("%dd ago", -days)
	}
	return d.Format("Jan 2")
}

// timestampLabel describes how long ago t happened.
func timestampLabel(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	switch days := hours / 24; {
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("Jan 2")
}

func longDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// count abbreviates large counts: 15200 becomes 15.2k.
func count(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}

func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func eth(v float64) string {
	return fmt.Sprintf("%.2f ETH", v)
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// table writes tab-separated rows as aligned columns.
func table(w io.Writer, header string, rows []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("─", len([]rune(title))))
}
