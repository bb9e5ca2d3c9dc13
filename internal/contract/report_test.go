package contract

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseFilterList("a, b,,c"))
	assert.Equal(t, []string{"Project X"}, ParseFilterList("  Project X  "))
	assert.Nil(t, ParseFilterList(""))
	assert.Nil(t, ParseFilterList(" , ,"))
}

func TestNewReportRequest_DefaultsToToday(t *testing.T) {
	req := NewReportRequest("")
	assert.Equal(t, Today(), req.Date)
	assert.Nil(t, req.Projects)
	assert.Nil(t, req.Annotators)

	req = NewReportRequest(" 2024-01-15 ")
	assert.Equal(t, "2024-01-15", req.Date)
}

func TestReportRequest_Filter(t *testing.T) {
	req := NewReportRequest("2024-01-15")
	req.Projects = []string{"P1"}
	f := req.Filter()
	assert.Equal(t, domain.Filter{Date: "2024-01-15", Projects: []string{"P1"}}, f)
}

func TestDailyReport_ViewRendersEmptyArrays(t *testing.T) {
	r := &DailyReport{
		Date:           "2024-01-15",
		AnnotatorChart: NewChartSeries(nil),
		ProjectChart:   NewChartSeries(nil),
	}
	data, err := json.Marshal(r.View())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"by_annotator", "by_project", "flagged", "entries"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
	chart := decoded["annotator_chart"].(map[string]any)
	assert.Equal(t, []any{}, chart["labels"])
}

func TestGroupViews_CarriesEfficiency(t *testing.T) {
	views := GroupViews([]domain.GroupSummary{
		{Key: "Alice", TotalImages: 80, TotalHours: 8, EntriesCount: 2},
		{Key: "Bob", TotalImages: 5},
	})
	require.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Name)
	assert.Equal(t, 10.0, views[0].Efficiency)
	assert.Equal(t, 0.0, views[1].Efficiency)
}

func TestNewChartSeries(t *testing.T) {
	cs := NewChartSeries([]domain.GroupSummary{
		{Key: "P1", TotalImages: 30},
		{Key: "P2", TotalImages: 10},
	})
	assert.Equal(t, []string{"P1", "P2"}, cs.Labels)
	assert.Equal(t, []int{30, 10}, cs.Images)
}
