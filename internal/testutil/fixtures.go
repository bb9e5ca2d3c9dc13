package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// FixtureDate is the default logical date for fixtures.
const FixtureDate = "2024-01-15"

var createdCounter atomic.Int64

// nextCreatedAt returns strictly increasing timestamps so creation order in
// tests matches construction order.
func nextCreatedAt() string {
	n := createdCounter.Add(1)
	base := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	return base.Add(time.Duration(n) * time.Second).Format(domain.CreatedAtLayout)
}

type EntryOption func(*domain.WorkLogEntry)

func WithDate(d string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.Date = d
	}
}

func WithImages(n int) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.ImagesDone = n
	}
}

func WithHours(h float64) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.HoursSpent = h
	}
}

func WithTaskType(tt string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.TaskType = tt
	}
}

func WithStatus(s string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.Status = s
	}
}

func WithChallenges(s string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.Challenges = s
	}
}

func WithSuggestions(s string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.Suggestions = s
	}
}

func WithNotes(s string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.ExtraNotes = s
	}
}

func WithCreatedAt(ts string) EntryOption {
	return func(e *domain.WorkLogEntry) {
		e.CreatedAt = ts
	}
}

// NewTestEntry builds an unsaved entry for annotator on project.
func NewTestEntry(annotator, project string, opts ...EntryOption) *domain.WorkLogEntry {
	e := &domain.WorkLogEntry{
		Date:          FixtureDate,
		AnnotatorName: annotator,
		ProjectName:   project,
		TaskType:      "Bounding Boxes",
		ImagesDone:    10,
		HoursSpent:    1,
		Status:        "Completed",
		CreatedAt:     nextCreatedAt(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestSubmission returns a valid raw submission.
func NewTestSubmission(annotator, project string) domain.Submission {
	return domain.Submission{
		Date:          FixtureDate,
		AnnotatorName: annotator,
		ProjectName:   project,
		TaskType:      "Bounding Boxes",
		ImagesDone:    "10",
		HoursSpent:    fmt.Sprintf("%.1f", 1.0),
		Status:        "Completed",
	}
}
