package domain

import "strings"

type DependencyType string

const (
	FinishToStart  DependencyType = "FS"
	StartToStart   DependencyType = "SS"
	FinishToFinish DependencyType = "FF"
	StartToFinish  DependencyType = "SF"
)

// ParseDependencyType maps a source type string to a DependencyType.
// Empty and unknown values fall back to FinishToStart.
func ParseDependencyType(s string) DependencyType {
	switch DependencyType(strings.ToUpper(strings.TrimSpace(s))) {
	case StartToStart:
		return StartToStart
	case FinishToFinish:
		return FinishToFinish
	case StartToFinish:
		return StartToFinish
	default:
		return FinishToStart
	}
}

// Column markers used by the schedule source.
const (
	ColumnTypePredecessor = "PREDECESSOR"
	TagGanttStartDate     = "GANTT_START_DATE"
	TagGanttEndDate       = "GANTT_END_DATE"
	DefaultFloatTitle     = "Float"
)

// SummaryFormula marks a roll-up row's start-date cell.
const SummaryFormula = "=MIN(CHILDREN())"

type Bucket string

const (
	BucketCritical  Bucket = "critical"
	BucketConnected Bucket = "connected"
	BucketIsolated  Bucket = "isolated"
)

type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
	RunDryRun    RunStatus = "dry_run"
)

// ValidRunStatuses is the canonical set of accepted run status strings.
var ValidRunStatuses = map[string]bool{
	"succeeded": true, "failed": true, "dry_run": true,
}
