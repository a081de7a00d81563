package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/floatsync/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	AddUpdates(ctx context.Context, runID string, updates []domain.FloatUpdate) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	ListBySheet(ctx context.Context, sheetID string, limit int) ([]*domain.Run, error)
	ListUpdates(ctx context.Context, runID string) ([]domain.FloatUpdate, error)
}
