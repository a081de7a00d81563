package domain

import "time"

type RunCounts struct {
	Critical  int
	Connected int
	Isolated  int
	Updates   int
}

// Run records one float computation against a sheet.
type Run struct {
	ID             string
	SheetID        string
	Status         RunStatus
	CompletionDate *time.Time
	Counts         RunCounts
	Error          string
	StartedAt      time.Time
	FinishedAt     time.Time
}
