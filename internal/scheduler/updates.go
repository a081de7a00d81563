package scheduler

import "github.com/alexanderramin/floatsync/internal/domain"

type UpdateOptions struct {
	// AssignConnectedToSuccessor writes connected-row float to the successor
	// row instead of the predecessor row.
	AssignConnectedToSuccessor bool
}

// BuildUpdates turns a classification into the ordered update batch:
// critical-path rows first, then connected rows, then isolated rows.
func BuildUpdates(c *Classification, calc Calculator, opts UpdateOptions) []domain.FloatUpdate {
	b := &updateBatch{column: calc.cols.Float}

	for _, link := range c.Critical {
		dep := link.Dependency.PredecessorRowNumber
		if !c.InCriticalBucket(dep) {
			if pred, ok := c.Rows[dep]; ok {
				b.add(pred, domain.BucketCritical, domain.FloatValue(0))
			}
		}
		if row, ok := c.Rows[link.RowNumber]; ok {
			b.add(row, domain.BucketCritical, domain.FloatValue(0))
		}
	}

	for _, link := range c.Connected {
		pred, ok := c.Rows[link.Dependency.PredecessorRowNumber]
		if !ok {
			continue
		}
		succ, ok := c.Rows[link.RowNumber]
		if !ok {
			continue
		}

		var value *int
		if days, ok := calc.Float(FloatInput{
			Predecessor: pred,
			Successor:   &succ,
			LagDays:     link.Dependency.LagDays,
			Type:        link.Dependency.Type,
		}); ok {
			value = domain.FloatValue(days)
		}

		target := pred
		if opts.AssignConnectedToSuccessor {
			target = succ
		}
		b.add(target, domain.BucketConnected, value)
	}

	for _, row := range c.Isolated {
		if c.Members[row.RowNumber] {
			continue
		}
		days, ok := calc.Float(FloatInput{
			Predecessor:   row,
			SuccessorDate: c.CompletionDate,
			Type:          domain.FinishToStart,
		})
		if !ok || days == 0 {
			days = domain.NoFloat
		}
		b.add(row, domain.BucketIsolated, domain.FloatValue(days))
	}

	return b.updates
}

// CountBucket returns how many updates in the batch belong to bucket.
func CountBucket(updates []domain.FloatUpdate, bucket domain.Bucket) int {
	n := 0
	for _, u := range updates {
		if u.Bucket == bucket {
			n++
		}
	}
	return n
}

type updateBatch struct {
	column  int64
	updates []domain.FloatUpdate
}

func (b *updateBatch) add(row domain.Row, bucket domain.Bucket, value *int) {
	b.updates = append(b.updates, domain.FloatUpdate{
		RowID:     row.ID,
		RowNumber: row.RowNumber,
		ColumnID:  b.column,
		Bucket:    bucket,
		Value:     value,
	})
}
