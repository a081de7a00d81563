package service

import (
	"context"

	"github.com/alexanderramin/floatsync/internal/app"
	"github.com/alexanderramin/floatsync/internal/domain"
)

type FloatService interface {
	Run(ctx context.Context, req app.RunRequest) (*app.RunResult, error)
}

type HistoryService interface {
	// List returns runs newest first. An empty sheetID lists every sheet.
	List(ctx context.Context, sheetID string, limit int) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*app.RunDetail, error)
}

var (
	_ app.RunFloatUseCase   = (FloatService)(nil)
	_ app.RunHistoryUseCase = (HistoryService)(nil)
)
