package service

import (
	"context"
	"time"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/alexanderramin/annotationhq/internal/repository"
)

type reportService struct {
	logs     repository.WorkLogRepo
	observer UseCaseObserver
}

func NewReportService(logs repository.WorkLogRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		logs:     logs,
		observer: combineObservers(observers),
	}
}

func (s *reportService) Summary(ctx context.Context, req contract.ReportRequest) (domain.Summary, error) {
	entries, err := s.logs.List(ctx, req.Filter())
	if err != nil {
		return domain.Summary{}, err
	}
	return Summarize(entries), nil
}

func (s *reportService) ByAnnotator(ctx context.Context, req contract.ReportRequest) ([]domain.GroupSummary, error) {
	return s.grouped(ctx, req, domain.GroupByAnnotator)
}

func (s *reportService) ByProject(ctx context.Context, req contract.ReportRequest) ([]domain.GroupSummary, error) {
	return s.grouped(ctx, req, domain.GroupByProject)
}

func (s *reportService) grouped(ctx context.Context, req contract.ReportRequest, by domain.GroupBy) ([]domain.GroupSummary, error) {
	entries, err := s.logs.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return GroupEntries(entries, by), nil
}

func (s *reportService) Flagged(ctx context.Context, req contract.ReportRequest) ([]*domain.WorkLogEntry, error) {
	return s.logs.ListFlagged(ctx, req.Filter())
}

func (s *reportService) FullLog(ctx context.Context, req contract.ReportRequest) ([]*domain.WorkLogEntry, error) {
	return s.logs.List(ctx, req.Filter())
}

func (s *reportService) FilterOptions(ctx context.Context, date string) (*contract.FilterOptions, error) {
	projects, err := s.logs.DistinctProjects(ctx, date)
	if err != nil {
		return nil, err
	}
	annotators, err := s.logs.DistinctAnnotators(ctx, date)
	if err != nil {
		return nil, err
	}
	dates, err := s.logs.DistinctDates(ctx)
	if err != nil {
		return nil, err
	}
	return &contract.FilterOptions{
		Date:       date,
		Projects:   nonNil(projects),
		Annotators: nonNil(annotators),
		Dates:      nonNil(dates),
	}, nil
}

func (s *reportService) Dates(ctx context.Context) ([]string, error) {
	dates, err := s.logs.DistinctDates(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(dates), nil
}

// DailyReport reads the filtered log once and derives every aggregate from it.
func (s *reportService) DailyReport(ctx context.Context, req contract.ReportRequest) (report *contract.DailyReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"date":       req.Date,
		"projects":   len(req.Projects),
		"annotators": len(req.Annotators),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "daily_report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	entries, err := s.logs.List(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	fields["entries"] = len(entries)

	byAnnotator := GroupEntries(entries, domain.GroupByAnnotator)
	byProject := GroupEntries(entries, domain.GroupByProject)
	if entries == nil {
		entries = []*domain.WorkLogEntry{}
	}
	return &contract.DailyReport{
		Date:           req.Date,
		Summary:        Summarize(entries),
		ByAnnotator:    byAnnotator,
		ByProject:      byProject,
		Flagged:        flaggedOf(entries),
		Entries:        entries,
		AnnotatorChart: contract.NewChartSeries(byAnnotator),
		ProjectChart:   contract.NewChartSeries(byProject),
	}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
