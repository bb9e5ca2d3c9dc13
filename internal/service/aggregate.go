package service

import (
	"math"
	"sort"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// round2 rounds to two decimals, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize computes the overall rollup of entries.
func Summarize(entries []*domain.WorkLogEntry) domain.Summary {
	var s domain.Summary
	annotators := make(map[string]struct{})
	for _, e := range entries {
		s.TotalImages += e.ImagesDone
		s.TotalHours += e.HoursSpent
		annotators[e.AnnotatorName] = struct{}{}
	}
	s.TotalHours = round2(s.TotalHours)
	s.AnnotatorCount = len(annotators)
	s.TotalEntries = len(entries)
	return s
}

// GroupEntries rolls entries up by annotator or project, ordered by total
// images descending. entries are expected newest first; groups with equal
// totals keep the order in which their key first appeared, oldest first.
func GroupEntries(entries []*domain.WorkLogEntry, by domain.GroupBy) []domain.GroupSummary {
	index := make(map[string]int)
	groups := make([]domain.GroupSummary, 0)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		key := e.AnnotatorName
		if by == domain.GroupByProject {
			key = e.ProjectName
		}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, domain.GroupSummary{Key: key})
		}
		g := &groups[pos]
		g.TotalImages += e.ImagesDone
		g.TotalHours += e.HoursSpent
		g.EntriesCount++
	}
	for i := range groups {
		groups[i].TotalHours = round2(groups[i].TotalHours)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalImages > groups[j].TotalImages
	})
	return groups
}

// flaggedOf keeps the entries carrying challenges or suggestions, preserving order.
func flaggedOf(entries []*domain.WorkLogEntry) []*domain.WorkLogEntry {
	out := make([]*domain.WorkLogEntry, 0)
	for _, e := range entries {
		if e.Flagged() {
			out = append(out, e)
		}
	}
	return out
}
