package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/floatsync/internal/app"
	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/repository"
)

type historyService struct {
	runs     repository.RunRepo
	observer UseCaseObserver
}

func NewHistoryService(runs repository.RunRepo, observers ...UseCaseObserver) HistoryService {
	return &historyService{runs: runs, observer: useCaseObserverOrNoop(observers)}
}

func (s *historyService) List(ctx context.Context, sheetID string, limit int) (runs []*domain.Run, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"sheet_id": sheetID, "limit": limit}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "list-runs",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if sheetID == "" {
		runs, err = s.runs.List(ctx, limit)
	} else {
		runs, err = s.runs.ListBySheet(ctx, sheetID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	fields["count"] = len(runs)
	return runs, nil
}

func (s *historyService) Get(ctx context.Context, id string) (detail *app.RunDetail, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "show-run",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"run_id": id},
		})
	}()

	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}
	updates, err := s.runs.ListUpdates(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading updates of run %s: %w", id, err)
	}
	return &app.RunDetail{Run: run, Updates: updates}, nil
}
