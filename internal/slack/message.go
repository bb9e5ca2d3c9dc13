package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/dustin/go-humanize"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

var rankEmoji = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// MessageInput is everything the daily message is rendered from.
type MessageInput struct {
	Date           string
	Summary        domain.Summary
	Projects       []domain.GroupSummary
	Annotators     []domain.GroupSummary
	Flagged        []*domain.WorkLogEntry
	TaskAllocation string
}

// InputFromReport builds a MessageInput from an aggregated report.
func InputFromReport(r *contract.DailyReport, taskAllocation string) MessageInput {
	return MessageInput{
		Date:           r.Date,
		Summary:        r.Summary,
		Projects:       r.ByProject,
		Annotators:     r.ByAnnotator,
		Flagged:        r.Flagged,
		TaskAllocation: taskAllocation,
	}
}

// FormatDate renders 2024-01-15 as "Monday, January 15, 2024". Unparseable
// input is returned as is.
func FormatDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 02, 2006")
}

// RenderMessage produces the daily chat message. Sections without data are
// left out.
func RenderMessage(in MessageInput) string {
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	add("📊 *ANNOTATION DAILY HQ* — "+FormatDate(in.Date), divider, "")

	add("🎯 *TODAY'S IMPACT*",
		fmt.Sprintf("• *%s* images processed", humanize.Comma(int64(in.Summary.TotalImages))),
		fmt.Sprintf("• *%.1f* hours invested", in.Summary.TotalHours),
		fmt.Sprintf("• *%d* team members active", in.Summary.AnnotatorCount),
		fmt.Sprintf("• *%d* projects worked on", len(in.Projects)),
		"", divider, "")

	if len(in.Projects) > 0 {
		add("📋 *PROJECT STATUS*", "")
		for _, p := range in.Projects {
			// Per-project state is not tracked; every project reads COMPLETE.
			add(fmt.Sprintf("✅ `%s`", p.Key),
				fmt.Sprintf("    %d images processed — *COMPLETE*", p.TotalImages),
				"")
		}
		add(divider, "")
	}

	if len(in.Annotators) > 0 {
		add("👥 *TEAM CONTRIBUTIONS*", "")
		for i, a := range in.Annotators {
			prefix := "    "
			if emoji, ok := rankEmoji[i+1]; ok {
				prefix = emoji + " "
			}
			add(fmt.Sprintf("%s%s — %d images, %.1f hrs _(%.1f/hr)_",
				prefix, a.Key, a.TotalImages, a.TotalHours, a.Efficiency()))
		}
		add("", divider, "")
	}

	challenges := bulletLines(in.Flagged, func(e *domain.WorkLogEntry) string { return e.Challenges })
	if len(challenges) > 0 {
		add("⚠️ *CHALLENGES REPORTED*")
		add(challenges...)
		add("")
	}
	suggestions := bulletLines(in.Flagged, func(e *domain.WorkLogEntry) string { return e.Suggestions })
	if len(suggestions) > 0 {
		add("💡 *SUGGESTIONS*")
		add(suggestions...)
		add("")
	}
	if len(challenges) > 0 || len(suggestions) > 0 {
		add(divider, "")
	}

	if allocation := allocationLines(in.TaskAllocation); len(allocation) > 0 {
		add("📌 *TASK ALLOCATION*")
		add(allocation...)
		add("", divider, "")
	}

	if len(in.Annotators) > 0 {
		add(fmt.Sprintf("_Avg Efficiency: %.1f img/hr_", averageEfficiency(in.Annotators)))
	}

	return strings.Join(lines, "\n")
}

// bulletLines splits each text field into lines and re-bullets them
// uniformly, dropping one existing "•", "-" or "*" marker.
func bulletLines(entries []*domain.WorkLogEntry, field func(*domain.WorkLogEntry) string) []string {
	var out []string
	for _, e := range entries {
		text := strings.TrimSpace(field(e))
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			for _, marker := range []string{"•", "-", "*"} {
				if strings.HasPrefix(line, marker) {
					line = strings.TrimSpace(strings.TrimPrefix(line, marker))
					break
				}
			}
			out = append(out, "• "+line)
		}
	}
	return out
}

func allocationLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "→") || strings.HasPrefix(line, "->") {
			line = strings.ReplaceAll(line, "->", "→")
		} else {
			line = "→ " + line
		}
		out = append(out, line)
	}
	return out
}

func averageEfficiency(annotators []domain.GroupSummary) float64 {
	var images int
	var hours float64
	for _, a := range annotators {
		images += a.TotalImages
		hours += a.TotalHours
	}
	if hours <= 0 {
		return 0
	}
	return float64(images) / hours
}
