package slack

import (
	"strings"
	"testing"

	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Monday, January 15, 2024", FormatDate("2024-01-15"))
	assert.Equal(t, "Friday, March 01, 2024", FormatDate("2024-03-01"))
	assert.Equal(t, "yesterday", FormatDate("yesterday"))
}

func TestRenderMessage_FullReport(t *testing.T) {
	msg := RenderMessage(MessageInput{
		Date:    "2024-01-15",
		Summary: domain.Summary{TotalImages: 80, TotalHours: 6, AnnotatorCount: 1, TotalEntries: 2},
		Projects: []domain.GroupSummary{
			{Key: "P1", TotalImages: 50, TotalHours: 4, EntriesCount: 1},
			{Key: "P2", TotalImages: 30, TotalHours: 2, EntriesCount: 1},
		},
		Annotators: []domain.GroupSummary{
			{Key: "Alice", TotalImages: 80, TotalHours: 6, EntriesCount: 2},
		},
		Flagged: []*domain.WorkLogEntry{
			{Challenges: "slow"},
		},
	})

	want := strings.Join([]string{
		"📊 *ANNOTATION DAILY HQ* — Monday, January 15, 2024",
		divider,
		"",
		"🎯 *TODAY'S IMPACT*",
		"• *80* images processed",
		"• *6.0* hours invested",
		"• *1* team members active",
		"• *2* projects worked on",
		"",
		divider,
		"",
		"📋 *PROJECT STATUS*",
		"",
		"✅ `P1`",
		"    50 images processed — *COMPLETE*",
		"",
		"✅ `P2`",
		"    30 images processed — *COMPLETE*",
		"",
		divider,
		"",
		"👥 *TEAM CONTRIBUTIONS*",
		"",
		"🥇 Alice — 80 images, 6.0 hrs _(13.3/hr)_",
		"",
		divider,
		"",
		"⚠️ *CHALLENGES REPORTED*",
		"• slow",
		"",
		divider,
		"",
		"_Avg Efficiency: 13.3 img/hr_",
	}, "\n")
	assert.Equal(t, want, msg)
}

func TestRenderMessage_EmptyDayKeepsHeaderAndImpact(t *testing.T) {
	msg := RenderMessage(MessageInput{Date: "2024-01-15"})

	assert.Contains(t, msg, "📊 *ANNOTATION DAILY HQ*")
	assert.Contains(t, msg, "• *0* images processed")
	assert.NotContains(t, msg, "PROJECT STATUS")
	assert.NotContains(t, msg, "TEAM CONTRIBUTIONS")
	assert.NotContains(t, msg, "CHALLENGES")
	assert.NotContains(t, msg, "SUGGESTIONS")
	assert.NotContains(t, msg, "TASK ALLOCATION")
	assert.NotContains(t, msg, "Avg Efficiency")
}

func TestRenderMessage_ThousandsGrouping(t *testing.T) {
	msg := RenderMessage(MessageInput{Date: "2024-01-15", Summary: domain.Summary{TotalImages: 1234567}})
	assert.Contains(t, msg, "• *1,234,567* images processed")
}

func TestRenderMessage_Leaderboard(t *testing.T) {
	msg := RenderMessage(MessageInput{
		Date: "2024-01-15",
		Annotators: []domain.GroupSummary{
			{Key: "A", TotalImages: 100, TotalHours: 10},
			{Key: "B", TotalImages: 90, TotalHours: 0},
			{Key: "C", TotalImages: 80, TotalHours: 8},
			{Key: "D", TotalImages: 10, TotalHours: 2.5},
		},
	})

	assert.Contains(t, msg, "🥇 A — 100 images, 10.0 hrs _(10.0/hr)_")
	assert.Contains(t, msg, "🥈 B — 90 images, 0.0 hrs _(0.0/hr)_")
	assert.Contains(t, msg, "🥉 C — 80 images, 8.0 hrs _(10.0/hr)_")
	assert.Contains(t, msg, "\n    D — 10 images, 2.5 hrs _(4.0/hr)_")
	assert.True(t, strings.HasSuffix(msg, "_Avg Efficiency: 13.7 img/hr_"))
}

func TestRenderMessage_ZeroHoursFooter(t *testing.T) {
	msg := RenderMessage(MessageInput{
		Date:       "2024-01-15",
		Annotators: []domain.GroupSummary{{Key: "A", TotalImages: 5}},
	})
	assert.True(t, strings.HasSuffix(msg, "_Avg Efficiency: 0.0 img/hr_"))
}

func TestRenderMessage_BulletNormalization(t *testing.T) {
	msg := RenderMessage(MessageInput{
		Date: "2024-01-15",
		Flagged: []*domain.WorkLogEntry{
			{Challenges: "- tool lag\n\n* blurry frames\n• duplicate ids"},
			{Challenges: "   ", Suggestions: "add hotkeys"},
		},
	})

	assert.Contains(t, msg, "⚠️ *CHALLENGES REPORTED*\n• tool lag\n• blurry frames\n• duplicate ids\n\n")
	assert.Contains(t, msg, "💡 *SUGGESTIONS*\n• add hotkeys\n\n"+divider)
}

func TestRenderMessage_TaskAllocation(t *testing.T) {
	msg := RenderMessage(MessageInput{
		Date:           "2024-01-15",
		TaskAllocation: "Alice: P1\n-> Bob: P2\n→ Cara: QA\n\n",
	})

	assert.Contains(t, msg, "📌 *TASK ALLOCATION*\n→ Alice: P1\n→ Bob: P2\n→ Cara: QA\n\n"+divider)
}

func TestRenderMessage_BlankTaskAllocationOmitted(t *testing.T) {
	msg := RenderMessage(MessageInput{Date: "2024-01-15", TaskAllocation: "  \n "})
	assert.NotContains(t, msg, "TASK ALLOCATION")
}
