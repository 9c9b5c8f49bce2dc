package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	heading  = color.New(color.FgCyan, color.Bold)
	section  = color.New(color.Bold)
	severe   = color.New(color.FgRed, color.Bold)
	allClear = color.New(color.FgGreen)
)

// Render writes the human-readable moderation report. Detailed sections are
// omitted when no record is offensive.
func Render(w io.Writer, r Report) {
	fmt.Fprintln(w)
	heading.Fprintln(w, "=== MODERATION REPORT ===")

	fmt.Fprintln(w)
	section.Fprintln(w, "Basic Statistics:")
	fmt.Fprintf(w, "  Total comments processed: %d\n", r.Total)
	fmt.Fprintf(w, "  Offensive comments found: %d (%.1f%%)\n", r.OffensiveCount, r.OffensiveRatio*100)

	if r.OffensiveCount == 0 {
		fmt.Fprintln(w)
		allClear.Fprintln(w, "No offensive comments detected")
		return
	}

	fmt.Fprintln(w)
	section.Fprintln(w, "Offense Type Analysis:")
	for _, tc := range r.TypeCounts {
		fmt.Fprintf(w, "  %s: %d cases\n", title(tc.OffenseType), tc.Count)
	}

	fmt.Fprintln(w)
	section.Fprintln(w, "Severity Distribution:")
	fmt.Fprintf(w, "  Average severity: %.1f/10\n", r.Severity.Mean)
	fmt.Fprintf(w, "  Maximum severity: %d/10\n", r.Severity.Max)
	fmt.Fprintf(w, "  Minimum severity: %d/10\n", r.Severity.Min)

	fmt.Fprintln(w)
	section.Fprintf(w, "Top %d Most Severe Comments:\n", len(r.Top))
	for i, record := range r.Top {
		fmt.Fprintln(w)
		severe.Fprintf(w, "#%d Severity: %d/10\n", i+1, record.Severity)
		fmt.Fprintf(w, "  User: %s\n", record.Username)
		fmt.Fprintf(w, "  Comment: %s\n", record.CommentText)
		fmt.Fprintf(w, "  Type: %s\n", title(record.OffenseType))
		fmt.Fprintf(w, "  Analysis: %s\n", record.Explanation)
	}
}

func title(offenseType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(offenseType, "_", " "))
}
