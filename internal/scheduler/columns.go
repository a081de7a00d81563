package scheduler

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/floatsync/internal/domain"
)

var (
	// ErrMissingColumn indicates a required column could not be resolved.
	ErrMissingColumn = errors.New("required column missing")

	// ErrAmbiguousColumn indicates more than one column matched a required kind.
	ErrAmbiguousColumn = errors.New("required column ambiguous")
)

type ColumnKind string

const (
	ColumnPredecessor ColumnKind = "predecessor"
	ColumnStartDate   ColumnKind = "start date"
	ColumnEndDate     ColumnKind = "end date"
	ColumnFloat       ColumnKind = "float"
)

// ColumnError reports which required column failed to resolve.
type ColumnError struct {
	Kind ColumnKind
	Err  error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s column: %v", e.Kind, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// Columns holds the ids of the four columns float computation needs.
type Columns struct {
	Predecessor int64
	StartDate   int64
	EndDate     int64
	Float       int64
}

// ResolveColumns locates the predecessor, start-date, end-date and float
// columns. Each kind must match exactly one column.
func ResolveColumns(columns []domain.Column, floatTitle string) (Columns, error) {
	if floatTitle == "" {
		floatTitle = domain.DefaultFloatTitle
	}

	matchers := []struct {
		kind  ColumnKind
		match func(domain.Column) bool
		dst   func(*Columns, int64)
	}{
		{ColumnPredecessor, func(c domain.Column) bool { return c.Type == domain.ColumnTypePredecessor },
			func(r *Columns, id int64) { r.Predecessor = id }},
		{ColumnStartDate, func(c domain.Column) bool { return c.HasTag(domain.TagGanttStartDate) },
			func(r *Columns, id int64) { r.StartDate = id }},
		{ColumnEndDate, func(c domain.Column) bool { return c.HasTag(domain.TagGanttEndDate) },
			func(r *Columns, id int64) { r.EndDate = id }},
		{ColumnFloat, func(c domain.Column) bool { return c.Title == floatTitle },
			func(r *Columns, id int64) { r.Float = id }},
	}

	var resolved Columns
	for _, m := range matchers {
		found := 0
		for _, col := range columns {
			if !m.match(col) {
				continue
			}
			found++
			m.dst(&resolved, col.ID)
		}
		switch {
		case found == 0:
			return Columns{}, &ColumnError{Kind: m.kind, Err: ErrMissingColumn}
		case found > 1:
			return Columns{}, &ColumnError{Kind: m.kind, Err: ErrAmbiguousColumn}
		}
	}
	return resolved, nil
}
