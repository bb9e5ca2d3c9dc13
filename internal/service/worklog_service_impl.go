package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/annotationhq/internal/db"
	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/alexanderramin/annotationhq/internal/repository"
)

type workLogService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWorkLogService(uow db.UnitOfWork, observers ...UseCaseObserver) WorkLogService {
	return &workLogService{
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *workLogService) Submit(ctx context.Context, sub domain.Submission) (entry *domain.WorkLogEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"annotator": sub.AnnotatorName,
		"project":   sub.ProjectName,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit_work_log",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	candidate, errs := domain.ValidateSubmission(sub)
	if errs != nil {
		fields["invalid_fields"] = errs.Fields()
		return nil, errs
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkLogRepo(tx)
		if err := repo.Create(ctx, candidate); err != nil {
			return err
		}
		stored, err := repo.GetByID(ctx, candidate.ID)
		if err != nil {
			return fmt.Errorf("reading back work log: %w", err)
		}
		entry = stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storing work log: %w", err)
	}
	fields["id"] = entry.ID
	return entry, nil
}
