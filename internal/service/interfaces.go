package service

import (
	"context"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
)

// WorkLogService accepts submissions. A validation failure is returned as
// domain.FieldErrors and nothing is stored.
type WorkLogService interface {
	Submit(ctx context.Context, s domain.Submission) (*domain.WorkLogEntry, error)
}

// ReportService answers every read use case. Empty results are not errors.
type ReportService interface {
	Summary(ctx context.Context, req contract.ReportRequest) (domain.Summary, error)
	ByAnnotator(ctx context.Context, req contract.ReportRequest) ([]domain.GroupSummary, error)
	ByProject(ctx context.Context, req contract.ReportRequest) ([]domain.GroupSummary, error)
	Flagged(ctx context.Context, req contract.ReportRequest) ([]*domain.WorkLogEntry, error)
	FullLog(ctx context.Context, req contract.ReportRequest) ([]*domain.WorkLogEntry, error)
	FilterOptions(ctx context.Context, date string) (*contract.FilterOptions, error)
	Dates(ctx context.Context) ([]string, error)
	DailyReport(ctx context.Context, req contract.ReportRequest) (*contract.DailyReport, error)
}
