package app

import (
	"time"

	"github.com/alexanderramin/floatsync/internal/domain"
)

type RunRequest struct {
	// SheetID overrides the configured sheet when set.
	SheetID string
	DryRun  bool
	// AssignConnectedToSuccessor keys connected-row float by the successor
	// row instead of the predecessor row.
	AssignConnectedToSuccessor bool
	FloatColumnTitle           string
	Now                        *time.Time
}

func NewRunRequest(sheetID string) RunRequest {
	return RunRequest{
		SheetID:          sheetID,
		FloatColumnTitle: domain.DefaultFloatTitle,
	}
}

type RunResult struct {
	Run     *domain.Run
	Updates []domain.FloatUpdate
}

// Submitted reports whether the batch was written back to the sheet.
func (r *RunResult) Submitted() bool {
	return r.Run != nil && r.Run.Status == domain.RunSucceeded
}

type RunDetail struct {
	Run     *domain.Run
	Updates []domain.FloatUpdate
}

type RunErrorCode string

const (
	RunErrSheetIDMissing RunErrorCode = "SHEET_ID_MISSING"
)

type RunError struct {
	Code    RunErrorCode
	Message string
}

func (e *RunError) Error() string {
	return string(e.Code) + ": " + e.Message
}
