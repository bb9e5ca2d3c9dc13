package contract

import (
	"strings"
	"time"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// ReportRequest scopes every read use case. Empty Projects or Annotators mean
// "no restriction".
type ReportRequest struct {
	Date       string
	Projects   []string
	Annotators []string
}

// NewReportRequest returns a request for date, defaulting to today (local).
func NewReportRequest(date string) ReportRequest {
	date = strings.TrimSpace(date)
	if date == "" {
		date = Today()
	}
	return ReportRequest{Date: date}
}

// Filter converts the request into the store-level filter.
func (r ReportRequest) Filter() domain.Filter {
	return domain.Filter{
		Date:       r.Date,
		Projects:   r.Projects,
		Annotators: r.Annotators,
	}
}

// Today returns the current local calendar date.
func Today() string {
	return time.Now().Format(domain.DateLayout)
}

// ParseFilterList splits a comma-separated list, trimming items and dropping
// empties. Returns nil when nothing is left.
func ParseFilterList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// SummaryView is the JSON shape of domain.Summary.
type SummaryView struct {
	TotalImages    int     `json:"total_images"`
	TotalHours     float64 `json:"total_hours"`
	AnnotatorCount int     `json:"annotator_count"`
	TotalEntries   int     `json:"total_entries"`
}

// GroupView is one row of a per-annotator or per-project rollup.
type GroupView struct {
	Name         string  `json:"name"`
	TotalImages  int     `json:"total_images"`
	TotalHours   float64 `json:"total_hours"`
	EntriesCount int     `json:"entries_count"`
	Efficiency   float64 `json:"efficiency"`
}

// EntryView is the JSON shape of a stored work-log entry.
type EntryView struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	AnnotatorName string  `json:"annotator_name"`
	ProjectName   string  `json:"project_name"`
	TaskType      string  `json:"task_type"`
	ImagesDone    int     `json:"images_done"`
	HoursSpent    float64 `json:"hours_spent"`
	Status        string  `json:"status"`
	Challenges    string  `json:"challenges"`
	Suggestions   string  `json:"suggestions"`
	ExtraNotes    string  `json:"extra_notes"`
	CreatedAt     string  `json:"created_at"`
}

// ChartSeries pairs labels with values for a bar chart.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Images []int    `json:"images"`
}

// DailyReport bundles every aggregate for one request.
type DailyReport struct {
	Date           string
	Summary        domain.Summary
	ByAnnotator    []domain.GroupSummary
	ByProject      []domain.GroupSummary
	Flagged        []*domain.WorkLogEntry
	Entries        []*domain.WorkLogEntry
	AnnotatorChart ChartSeries
	ProjectChart   ChartSeries
}

// DailyReportView is the serialized form of DailyReport. Slices are never
// nil so JSON renders empty arrays.
type DailyReportView struct {
	Date           string      `json:"date"`
	Summary        SummaryView `json:"summary"`
	ByAnnotator    []GroupView `json:"by_annotator"`
	ByProject      []GroupView `json:"by_project"`
	Flagged        []EntryView `json:"flagged"`
	Entries        []EntryView `json:"entries"`
	AnnotatorChart ChartSeries `json:"annotator_chart"`
	ProjectChart   ChartSeries `json:"project_chart"`
}

// View converts the report into its serialized form.
func (r *DailyReport) View() DailyReportView {
	return DailyReportView{
		Date: r.Date,
		Summary: SummaryView{
			TotalImages:    r.Summary.TotalImages,
			TotalHours:     r.Summary.TotalHours,
			AnnotatorCount: r.Summary.AnnotatorCount,
			TotalEntries:   r.Summary.TotalEntries,
		},
		ByAnnotator:    GroupViews(r.ByAnnotator),
		ByProject:      GroupViews(r.ByProject),
		Flagged:        EntryViews(r.Flagged),
		Entries:        EntryViews(r.Entries),
		AnnotatorChart: r.AnnotatorChart,
		ProjectChart:   r.ProjectChart,
	}
}

// NewChartSeries projects groups into chart labels and image counts.
func NewChartSeries(groups []domain.GroupSummary) ChartSeries {
	cs := ChartSeries{
		Labels: make([]string, 0, len(groups)),
		Images: make([]int, 0, len(groups)),
	}
	for _, g := range groups {
		cs.Labels = append(cs.Labels, g.Key)
		cs.Images = append(cs.Images, g.TotalImages)
	}
	return cs
}

// GroupViews converts group summaries into their serialized form, never nil.
func GroupViews(groups []domain.GroupSummary) []GroupView {
	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupView{
			Name:         g.Key,
			TotalImages:  g.TotalImages,
			TotalHours:   g.TotalHours,
			EntriesCount: g.EntriesCount,
			Efficiency:   g.Efficiency(),
		})
	}
	return out
}

// EntryViews converts entries into their serialized form, never nil.
func EntryViews(entries []*domain.WorkLogEntry) []EntryView {
	out := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryView(e))
	}
	return out
}

// NewEntryView copies a stored entry into its JSON shape.
func NewEntryView(e *domain.WorkLogEntry) EntryView {
	return EntryView{
		ID:            e.ID,
		Date:          e.Date,
		AnnotatorName: e.AnnotatorName,
		ProjectName:   e.ProjectName,
		TaskType:      e.TaskType,
		ImagesDone:    e.ImagesDone,
		HoursSpent:    e.HoursSpent,
		Status:        e.Status,
		Challenges:    e.Challenges,
		Suggestions:   e.Suggestions,
		ExtraNotes:    e.ExtraNotes,
		CreatedAt:     e.CreatedAt,
	}
}

// FilterOptions lists the choices available to populate report filters.
type FilterOptions struct {
	Date       string   `json:"date"`
	Projects   []string `json:"projects"`
	Annotators []string `json:"annotators"`
	Dates      []string `json:"dates"`
}
