package testutil

import (
	"time"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/google/uuid"
)

// Column ids used by the fixture sheet.
const (
	ColTask        int64 = 101
	ColPredecessor int64 = 102
	ColStart       int64 = 103
	ColEnd         int64 = 104
	ColFloat       int64 = 105
)

// HolidayNewYear is the single exception date of the fixture calendar.
const HolidayNewYear = "2024-01-01"

var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}

// NewTestColumns returns a column list with every required column present.
func NewTestColumns() []domain.Column {
	return []domain.Column{
		{ID: ColTask, Type: "TEXT_NUMBER", Title: "Task Name"},
		{ID: ColPredecessor, Type: domain.ColumnTypePredecessor, Title: "Predecessors"},
		{ID: ColStart, Type: "DATE", Title: "Start", Tags: []string{domain.TagGanttStartDate, "CALENDAR_START_DATE"}},
		{ID: ColEnd, Type: "DATE", Title: "Finish", Tags: []string{domain.TagGanttEndDate, "CALENDAR_END_DATE"}},
		{ID: ColFloat, Type: "TEXT_NUMBER", Title: domain.DefaultFloatTitle},
	}
}

// Row options
type RowOption func(*domain.Row)

func WithDates(start, end string) RowOption {
	return func(r *domain.Row) {
		setCell(r, domain.Cell{ColumnID: ColStart, Value: nullable(start)})
		setCell(r, domain.Cell{ColumnID: ColEnd, Value: nullable(end)})
	}
}

func WithPredecessors(deps ...domain.Dependency) RowOption {
	return func(r *domain.Row) {
		setCell(r, domain.Cell{
			ColumnID:     ColPredecessor,
			Value:        "linked",
			Predecessors: &domain.PredecessorList{Dependencies: deps},
		})
	}
}

// AsSummary marks the row as a roll-up row via its start-date formula.
func AsSummary() RowOption {
	return func(r *domain.Row) {
		for i := range r.Cells {
			if r.Cells[i].ColumnID == ColStart {
				r.Cells[i].Formula = domain.SummaryFormula
				return
			}
		}
		setCell(r, domain.Cell{ColumnID: ColStart, Formula: domain.SummaryFormula})
	}
}

func WithoutPredecessorCell() RowOption {
	return func(r *domain.Row) {
		cells := r.Cells[:0]
		for _, c := range r.Cells {
			if c.ColumnID != ColPredecessor {
				cells = append(cells, c)
			}
		}
		r.Cells = cells
	}
}

// NewTestRow builds a row numbered n with an id of 1000+n, a task name and
// an empty predecessor cell.
func NewTestRow(n int, opts ...RowOption) domain.Row {
	r := domain.Row{
		ID:        int64(1000 + n),
		RowNumber: n,
		Cells: []domain.Cell{
			{ColumnID: ColTask, Value: "Task " + uuid.NewString()[:8]},
			{ColumnID: ColPredecessor},
		},
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}

// Dependency options
type DependencyOption func(*domain.Dependency)

func Critical() DependencyOption {
	return func(d *domain.Dependency) { d.InCriticalPath = true }
}

func WithLag(days float64) DependencyOption {
	return func(d *domain.Dependency) { d.LagDays = days }
}

func WithType(t domain.DependencyType) DependencyOption {
	return func(d *domain.Dependency) { d.Type = t }
}

func NewTestDependency(predecessorRow int, opts ...DependencyOption) domain.Dependency {
	d := domain.Dependency{
		PredecessorRowNumber: predecessorRow,
		Type:                 domain.FinishToStart,
	}
	for _, o := range opts {
		o(&d)
	}
	return d
}

// NewTestSheet wraps rows in a Monday-to-Friday sheet with a New Year holiday.
func NewTestSheet(rows ...domain.Row) *domain.Sheet {
	return &domain.Sheet{
		ID:   4242,
		Name: "Fixture Schedule",
		Settings: domain.ProjectSettings{
			WorkingDays:    Weekdays,
			NonWorkingDays: []string{HolidayNewYear},
		},
		Columns: NewTestColumns(),
		Rows:    rows,
	}
}

// NewTestRun returns a succeeded run record for sheetID.
func NewTestRun(sheetID string) *domain.Run {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Run{
		ID:         uuid.New().String(),
		SheetID:    sheetID,
		Status:     domain.RunSucceeded,
		StartedAt:  now,
		FinishedAt: now.Add(2 * time.Second),
	}
}

func setCell(r *domain.Row, cell domain.Cell) {
	for i := range r.Cells {
		if r.Cells[i].ColumnID == cell.ColumnID {
			cell.Formula = r.Cells[i].Formula
			r.Cells[i] = cell
			return
		}
	}
	r.Cells = append(r.Cells, cell)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
