package app

import (
	"context"

	"github.com/alexanderramin/floatsync/internal/domain"
)

type RunFloatUseCase interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}

type RunHistoryUseCase interface {
	List(ctx context.Context, sheetID string, limit int) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*RunDetail, error)
}
