package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/floatsync/internal/db"
	"github.com/alexanderramin/floatsync/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

const runColumns = `id, sheet_id, status, completion_date, critical_count, connected_count,
	isolated_count, update_count, error, started_at, finished_at`

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	if !domain.ValidRunStatuses[string(run.Status)] {
		return fmt.Errorf("inserting run: invalid status %q", run.Status)
	}
	query := `INSERT INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.SheetID,
		string(run.Status),
		nullableTimeToString(run.CompletionDate, dateLayout),
		run.Counts.Critical,
		run.Counts.Connected,
		run.Counts.Isolated,
		run.Counts.Updates,
		run.Error,
		run.StartedAt.UTC().Format(timestampLayout),
		run.FinishedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// AddUpdates stores the batch in emission order; seq preserves that order.
func (r *SQLiteRunRepo) AddUpdates(ctx context.Context, runID string, updates []domain.FloatUpdate) error {
	query := `INSERT INTO run_updates (run_id, seq, row_id, row_number, column_id, bucket, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, u := range updates {
		_, err := r.db.ExecContext(ctx, query,
			runID, i, u.RowID, u.RowNumber, u.ColumnID, string(u.Bucket), nullableIntToValue(u.Value),
		)
		if err != nil {
			return fmt.Errorf("inserting run update %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return run, err
}

func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, defaultLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func (r *SQLiteRunRepo) ListBySheet(ctx context.Context, sheetID string, limit int) ([]*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs WHERE sheet_id = ? ORDER BY started_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, sheetID, defaultLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing runs by sheet: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func (r *SQLiteRunRepo) ListUpdates(ctx context.Context, runID string) ([]domain.FloatUpdate, error) {
	query := `SELECT row_id, row_number, column_id, bucket, value
		FROM run_updates WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run updates: %w", err)
	}
	defer rows.Close()

	var updates []domain.FloatUpdate
	for rows.Next() {
		var (
			u      domain.FloatUpdate
			bucket string
			value  sql.NullInt64
		)
		if err := rows.Scan(&u.RowID, &u.RowNumber, &u.ColumnID, &bucket, &value); err != nil {
			return nil, fmt.Errorf("scanning run update: %w", err)
		}
		u.Bucket = domain.Bucket(bucket)
		u.Value = nullIntToPtr(value)
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run updates: %w", err)
	}
	return updates, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*domain.Run, error) {
	var (
		run                   domain.Run
		status                string
		completion            sql.NullString
		startedAt, finishedAt string
	)
	err := s.Scan(
		&run.ID, &run.SheetID, &status, &completion,
		&run.Counts.Critical, &run.Counts.Connected, &run.Counts.Isolated, &run.Counts.Updates,
		&run.Error, &startedAt, &finishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.Status = domain.RunStatus(status)
	run.CompletionDate = parseNullableTime(completion, dateLayout)
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}
	return &run, nil
}

func scanRuns(rows *sql.Rows) ([]*domain.Run, error) {
	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
