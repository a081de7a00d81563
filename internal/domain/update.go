package domain

// NoFloat is written when no float can be determined for an isolated row.
// It is distinct from a real value of 0.
const NoFloat = -1

// FloatUpdate is one (row, float column, value) triple of the terminal batch.
type FloatUpdate struct {
	RowID     int64
	RowNumber int
	ColumnID  int64
	Bucket    Bucket
	// Value is nil when the float calculation produced no result.
	Value *int
}

// FloatValue returns a pointer to v for use as an update value.
func FloatValue(v int) *int {
	return &v
}
