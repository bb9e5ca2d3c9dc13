package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// Column is one fixed report column.
type Column struct {
	Label   string
	Numeric bool
	value   func(e *domain.WorkLogEntry) string
}

// Columns is the fixed column set shared by every formatter.
var Columns = []Column{
	{Label: "Date", value: func(e *domain.WorkLogEntry) string { return e.Date }},
	{Label: "Time", value: func(e *domain.WorkLogEntry) string { return TimeOfDay(e.CreatedAt) }},
	{Label: "Annotator", value: func(e *domain.WorkLogEntry) string { return e.AnnotatorName }},
	{Label: "Project", value: func(e *domain.WorkLogEntry) string { return e.ProjectName }},
	{Label: "Task Type", value: func(e *domain.WorkLogEntry) string { return e.TaskType }},
	{Label: "Images Done", Numeric: true, value: func(e *domain.WorkLogEntry) string { return strconv.Itoa(e.ImagesDone) }},
	{Label: "Hours Spent", Numeric: true, value: func(e *domain.WorkLogEntry) string { return FormatHours(e.HoursSpent) }},
	{Label: "Status", value: func(e *domain.WorkLogEntry) string { return e.Status }},
	{Label: "Challenges", value: func(e *domain.WorkLogEntry) string { return e.Challenges }},
	{Label: "Suggestions", value: func(e *domain.WorkLogEntry) string { return e.Suggestions }},
	{Label: "Extra Notes", value: func(e *domain.WorkLogEntry) string { return e.ExtraNotes }},
}

// Header returns the column labels in order.
func Header() []string {
	labels := make([]string, len(Columns))
	for i, c := range Columns {
		labels[i] = c.Label
	}
	return labels
}

// Row renders e as text cells in column order.
func Row(e *domain.WorkLogEntry) []string {
	cells := make([]string, len(Columns))
	for i, c := range Columns {
		cells[i] = c.value(e)
	}
	return cells
}

// TimeOfDay cuts HH:MM out of a stored created_at timestamp. Strings of 16
// characters or fewer are returned unchanged.
func TimeOfDay(createdAt string) string {
	if len(createdAt) > 16 {
		return createdAt[11:16]
	}
	return createdAt
}

// FormatHours renders hours with at least one decimal place ("4.0", "2.25").
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Filename returns the download name for a report on date.
func Filename(date, ext string) string {
	return fmt.Sprintf("annotation_report_%s.%s", date, ext)
}
