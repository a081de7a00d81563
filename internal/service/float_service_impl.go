package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/floatsync/internal/app"
	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/db"
	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/repository"
	"github.com/alexanderramin/floatsync/internal/scheduler"
	"github.com/alexanderramin/floatsync/internal/sheet"
	"github.com/google/uuid"
)

type floatService struct {
	client   sheet.Client
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewFloatService(client sheet.Client, uow db.UnitOfWork, observers ...UseCaseObserver) FloatService {
	return &floatService{
		client:   client,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Run fetches the sheet, computes the float batch and, unless DryRun is set,
// submits it. The run and its batch are recorded whatever the outcome once a
// sheet id is known. A submission error is returned unchanged.
func (s *floatService) Run(ctx context.Context, req app.RunRequest) (result *app.RunResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"sheet_id": req.SheetID,
		"dry_run":  req.DryRun,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "float-run",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.SheetID == "" {
		return nil, &app.RunError{Code: app.RunErrSheetIDMissing, Message: "no sheet id configured"}
	}

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}
	run := &domain.Run{
		ID:        uuid.New().String(),
		SheetID:   req.SheetID,
		StartedAt: now,
	}

	updates, err := s.compute(ctx, req, run)
	if err == nil && !req.DryRun {
		err = s.client.UpdateRows(ctx, req.SheetID, updates)
	}

	switch {
	case err != nil:
		run.Status = domain.RunFailed
		run.Error = err.Error()
	case req.DryRun:
		run.Status = domain.RunDryRun
	default:
		run.Status = domain.RunSucceeded
	}
	run.FinishedAt = now.Add(time.Since(startedAt))
	fields["status"] = string(run.Status)
	fields["critical"] = run.Counts.Critical
	fields["connected"] = run.Counts.Connected
	fields["isolated"] = run.Counts.Isolated
	fields["updates"] = run.Counts.Updates

	if recErr := s.record(ctx, run, updates); recErr != nil {
		if err != nil {
			slog.WarnContext(ctx, "recording failed run", "run_id", run.ID, "error", recErr)
			return nil, err
		}
		return nil, recErr
	}
	if err != nil {
		return nil, err
	}

	return &app.RunResult{Run: run, Updates: updates}, nil
}

func (s *floatService) compute(ctx context.Context, req app.RunRequest, run *domain.Run) ([]domain.FloatUpdate, error) {
	snapshot, err := s.client.GetSheet(ctx, req.SheetID)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet %s: %w", req.SheetID, err)
	}

	cols, err := scheduler.ResolveColumns(snapshot.Columns, domain.CoalesceStr(req.FloatColumnTitle, domain.DefaultFloatTitle))
	if err != nil {
		return nil, fmt.Errorf("resolving columns of sheet %s: %w", req.SheetID, err)
	}

	cal := calendar.FromSettings(snapshot.Settings)
	classification := scheduler.Classify(snapshot.Rows, cols)
	updates := scheduler.BuildUpdates(classification, scheduler.NewCalculator(cal, cols), scheduler.UpdateOptions{
		AssignConnectedToSuccessor: req.AssignConnectedToSuccessor,
	})

	run.CompletionDate = classification.CompletionDate
	run.Counts = domain.RunCounts{
		Critical:  len(classification.Critical),
		Connected: len(classification.Connected),
		Isolated:  scheduler.CountBucket(updates, domain.BucketIsolated),
		Updates:   len(updates),
	}
	return updates, nil
}

func (s *floatService) record(ctx context.Context, run *domain.Run, updates []domain.FloatUpdate) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		runs := repository.NewSQLiteRunRepo(tx)
		if err := runs.Create(ctx, run); err != nil {
			return err
		}
		return runs.AddUpdates(ctx, run.ID, updates)
	})
}
