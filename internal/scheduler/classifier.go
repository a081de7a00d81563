package scheduler

import (
	"time"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/domain"
)

// Link pairs a successor row number with one of its dependencies.
type Link struct {
	RowNumber  int
	Dependency domain.Dependency
}

// Classification is the result of one pass over the sheet rows.
//
// Critical and Connected are keyed by successor row number: a row appears at
// most once per bucket, carrying the last dependency of that kind, in the
// order the row was first seen. A row may appear in both buckets.
type Classification struct {
	Critical  []Link
	Connected []Link
	Isolated  []domain.Row

	// Members holds every row number seen on either side of a dependency.
	// It only suppresses isolated-row treatment.
	Members map[int]bool

	// CompletionDate is the latest end date across non-summary rows.
	CompletionDate *time.Time

	// Rows indexes every row, summary rows included, by row number.
	Rows map[int]domain.Row

	criticalIndex map[int]int
}

// InCriticalBucket reports whether rowNumber is a key of the critical bucket.
func (c *Classification) InCriticalBucket(rowNumber int) bool {
	_, ok := c.criticalIndex[rowNumber]
	return ok
}

// IsSummaryRow reports whether row is a roll-up row, identified by the
// aggregate formula on its start-date cell.
func IsSummaryRow(row domain.Row, cols Columns) bool {
	cell, ok := row.Cell(cols.StartDate)
	return ok && cell.Formula == domain.SummaryFormula
}

// Classify partitions rows into the critical, connected and isolated
// buckets and tracks the project completion date.
func Classify(rows []domain.Row, cols Columns) *Classification {
	c := &Classification{
		Members:       make(map[int]bool),
		Rows:          make(map[int]domain.Row, len(rows)),
		criticalIndex: make(map[int]int),
	}
	connectedIndex := make(map[int]int)
	isolatedIndex := make(map[int]int)

	for _, row := range rows {
		c.Rows[row.RowNumber] = row

		if IsSummaryRow(row, cols) {
			continue
		}

		for _, cell := range row.Cells {
			switch {
			case cell.ColumnID == cols.Predecessor && cell.Predecessors != nil:
				for _, dep := range cell.Predecessors.Dependencies {
					link := Link{RowNumber: row.RowNumber, Dependency: dep}
					if dep.InCriticalPath {
						c.Critical = putLink(c.Critical, c.criticalIndex, link)
					} else {
						c.Connected = putLink(c.Connected, connectedIndex, link)
					}
					c.Members[dep.PredecessorRowNumber] = true
					c.Members[row.RowNumber] = true
				}
			case cell.ColumnID == cols.EndDate && cell.Value != nil:
				end, ok := calendar.ParseDate(cell.Value)
				if !ok {
					continue
				}
				if c.CompletionDate == nil || end.After(*c.CompletionDate) {
					c.CompletionDate = &end
				}
			case cell.ColumnID == cols.Predecessor:
				if i, ok := isolatedIndex[row.RowNumber]; ok {
					c.Isolated[i] = row
					continue
				}
				isolatedIndex[row.RowNumber] = len(c.Isolated)
				c.Isolated = append(c.Isolated, row)
			}
		}
	}
	return c
}

// putLink inserts or replaces the link keyed by its row number, keeping
// first-insertion order.
func putLink(links []Link, index map[int]int, link Link) []Link {
	if i, ok := index[link.RowNumber]; ok {
		links[i] = link
		return links
	}
	index[link.RowNumber] = len(links)
	return append(links, link)
}
