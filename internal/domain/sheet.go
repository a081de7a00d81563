package domain

// Sheet is a read-only snapshot of a project schedule for one run.
type Sheet struct {
	ID       int64
	Name     string
	Settings ProjectSettings
	Columns  []Column
	Rows     []Row
}

type ProjectSettings struct {
	WorkingDays    []string
	NonWorkingDays []string
}

type Column struct {
	ID    int64
	Type  string
	Tags  []string
	Title string
}

// HasTag reports whether the column carries the given semantic tag.
func (c Column) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Row struct {
	ID        int64
	RowNumber int
	Cells     []Cell
}

// Cell returns the cell for columnID, if the row has one.
func (r Row) Cell(columnID int64) (Cell, bool) {
	for _, c := range r.Cells {
		if c.ColumnID == columnID {
			return c, true
		}
	}
	return Cell{}, false
}

// Value returns the scalar value of the cell in columnID, or nil.
func (r Row) Value(columnID int64) any {
	c, ok := r.Cell(columnID)
	if !ok {
		return nil
	}
	return c.Value
}

type Cell struct {
	ColumnID int64
	Value    any
	// Predecessors is nil when the cell carries no structured dependency data.
	Predecessors *PredecessorList
	Formula      string
}

type PredecessorList struct {
	Dependencies []Dependency
}

type Dependency struct {
	PredecessorRowNumber int
	Type                 DependencyType
	// LagDays is a signed working-day offset and may be fractional.
	LagDays        float64
	InCriticalPath bool
}
