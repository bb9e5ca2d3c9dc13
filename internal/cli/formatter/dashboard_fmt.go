package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/alexanderramin/annotationhq/internal/export"
	"github.com/alexanderramin/annotationhq/internal/slack"
)

const shareBarWidth = 10

// FormatDashboard renders the daily report as a terminal dashboard.
func FormatDashboard(r *contract.DailyReport) string {
	var b strings.Builder

	title := "Annotation Daily HQ · " + slack.FormatDate(r.Date)
	if r.Summary.TotalEntries == 0 {
		b.WriteString(RenderBox(title, Dim("No work logged for "+r.Date+".")))
		b.WriteString("\n")
		return b.String()
	}

	summary := fmt.Sprintf("%s images   %s hours   %s annotators   %s projects   %s entries",
		Bold(Count(r.Summary.TotalImages)),
		Bold(Hours(r.Summary.TotalHours)),
		Bold(strconv.Itoa(r.Summary.AnnotatorCount)),
		Bold(strconv.Itoa(len(r.ByProject))),
		Bold(strconv.Itoa(r.Summary.TotalEntries)),
	)
	b.WriteString(RenderBox(title, summary))
	b.WriteString("\n\n")

	b.WriteString(Header("By annotator"))
	b.WriteString("\n")
	b.WriteString(formatGroups("ANNOTATOR", r.ByAnnotator, r.Summary.TotalImages))
	b.WriteString("\n")

	b.WriteString(Header("By project"))
	b.WriteString("\n")
	b.WriteString(formatGroups("PROJECT", r.ByProject, r.Summary.TotalImages))

	if len(r.Flagged) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Challenges & suggestions"))
		b.WriteString("\n")
		b.WriteString(FormatFlagged(r.Flagged))
	}
	return b.String()
}

func formatGroups(keyLabel string, groups []domain.GroupSummary, total int) string {
	headers := []string{"#", keyLabel, "IMAGES", "HOURS", "RATE", "ENTRIES", "SHARE"}
	align := []Align{AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft}
	rows := make([][]string, 0, len(groups))
	for i, g := range groups {
		share := 0.0
		if total > 0 {
			share = float64(g.TotalImages) / float64(total)
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			Bold(g.Key),
			Count(g.TotalImages),
			Hours(g.TotalHours),
			Rate(g.TotalImages, g.TotalHours),
			strconv.Itoa(g.EntriesCount),
			RenderShareBar(share, shareBarWidth),
		})
	}
	return RenderAlignedTable(headers, rows, align)
}

// FormatFlagged lists challenges and suggestions, newest first.
func FormatFlagged(entries []*domain.WorkLogEntry) string {
	var b strings.Builder
	for _, e := range entries {
		who := fmt.Sprintf("%s · %s", Bold(e.AnnotatorName), Dim(e.ProjectName))
		b.WriteString(who + "\n")
		if c := strings.TrimSpace(e.Challenges); c != "" {
			for _, line := range strings.Split(c, "\n") {
				b.WriteString("  " + StyleYellow.Render("⚠ ") + strings.TrimSpace(line) + "\n")
			}
		}
		if s := strings.TrimSpace(e.Suggestions); s != "" {
			for _, line := range strings.Split(s, "\n") {
				b.WriteString("  " + StyleBlue.Render("✦ ") + strings.TrimSpace(line) + "\n")
			}
		}
	}
	return b.String()
}

// FormatLog renders the full entry list as a table.
func FormatLog(entries []*domain.WorkLogEntry) string {
	if len(entries) == 0 {
		return Dim("No entries.") + "\n"
	}
	headers := []string{"TIME", "ANNOTATOR", "PROJECT", "TASK", "IMAGES", "HOURS", "STATUS", "NOTES"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(export.TimeOfDay(e.CreatedAt)),
			e.AnnotatorName,
			e.ProjectName,
			e.TaskType,
			Count(e.ImagesDone),
			Hours(e.HoursSpent),
			StatusPill(e.Status),
			Dim(Truncate(e.ExtraNotes, 40)),
		})
	}
	return RenderAlignedTable(headers, rows, align)
}

// FormatEntry confirms a stored submission.
func FormatEntry(e *domain.WorkLogEntry) string {
	return fmt.Sprintf("%s Logged #%d: %s on %s (%s), %s images, %s hrs, %s\n",
		StyleGreen.Render("✔"), e.ID, Bold(e.AnnotatorName), e.ProjectName, e.Date,
		Count(e.ImagesDone), Hours(e.HoursSpent), StatusPill(e.Status))
}

// FormatFieldErrors lists validation messages in field order.
func FormatFieldErrors(errs domain.FieldErrors) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render("Submission rejected:") + "\n")
	for _, f := range errs.Fields() {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(f+":"), errs[f]))
	}
	return b.String()
}

// FormatFilterOptions lists the filter choices for a date.
func FormatFilterOptions(o *contract.FilterOptions) string {
	var b strings.Builder
	list := func(title string, values []string) {
		b.WriteString(Header(title))
		b.WriteString("\n")
		if len(values) == 0 {
			b.WriteString(Dim("  (none)") + "\n")
		}
		for _, v := range values {
			b.WriteString("  " + v + "\n")
		}
		b.WriteString("\n")
	}
	list("Projects on "+o.Date, o.Projects)
	list("Annotators on "+o.Date, o.Annotators)
	list("Dates with entries", o.Dates)
	return b.String()
}

// FormatDelivery describes a webhook delivery outcome.
func FormatDelivery(res slack.Result) string {
	if res.Success {
		return StyleGreen.Render("✔ "+res.Message) + "\n"
	}
	return StyleRed.Render("✖ "+res.Error) + Dim(" ("+res.Reason+")") + "\n"
}
