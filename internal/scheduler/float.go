package scheduler

import (
	"time"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/domain"
)

// maxLagWalk bounds the lag walk for calendars without working days.
const maxLagWalk = 366 * 50

// FloatInput describes one predecessor/successor pair. When Successor is nil,
// SuccessorDate is used directly (the project completion date case).
type FloatInput struct {
	Predecessor   domain.Row
	Successor     *domain.Row
	SuccessorDate *time.Time
	LagDays       float64
	Type          domain.DependencyType
}

// Calculator computes working-day float against one calendar.
type Calculator struct {
	cal  calendar.Calendar
	cols Columns
}

func NewCalculator(cal calendar.Calendar, cols Columns) Calculator {
	return Calculator{cal: cal, cols: cols}
}

// DateColumns returns the predecessor and successor date columns that
// constrain each other for the given dependency type.
func DateColumns(t domain.DependencyType, cols Columns) (pred, succ int64) {
	switch t {
	case domain.StartToStart:
		return cols.StartDate, cols.StartDate
	case domain.FinishToFinish:
		return cols.EndDate, cols.EndDate
	case domain.StartToFinish:
		return cols.StartDate, cols.EndDate
	default:
		return cols.EndDate, cols.StartDate
	}
}

// Float returns the working-day float for in. ok is false when either date
// is missing or unparseable.
func (c Calculator) Float(in FloatInput) (days int, ok bool) {
	predCol, succCol := DateColumns(in.Type, c.cols)

	predDate, ok := calendar.ParseDate(in.Predecessor.Value(predCol))
	if !ok {
		return 0, false
	}

	var succDate time.Time
	switch {
	case in.Successor != nil:
		succDate, ok = calendar.ParseDate(in.Successor.Value(succCol))
		if !ok {
			return 0, false
		}
	case in.SuccessorDate != nil:
		succDate = calendar.Day(*in.SuccessorDate)
	default:
		return 0, false
	}

	adjusted, _ := AdjustForLag(c.cal, succDate, in.LagDays)
	return CountFloat(c.cal, predDate, adjusted), true
}

// AdjustForLag walks back from succ one calendar day at a time, spending one
// unit of lag per working day landed on, until the lag is used up. It
// returns the adjusted date and the number of calendar days walked. Zero or
// negative lag leaves succ unchanged.
func AdjustForLag(cal calendar.Calendar, succ time.Time, lagDays float64) (time.Time, int) {
	remaining := lagDays
	walked := 0
	d := succ
	for remaining > 0 {
		d = d.AddDate(0, 0, -1)
		walked++
		if cal.IsWorkingDay(d) {
			remaining--
		}
		if walked >= maxLagWalk {
			break
		}
	}
	return succ.AddDate(0, 0, -walked), walked
}

// CountFloat steps back from adjusted while it is still after pred, counting
// each working day landed on. It is 0 when pred is not before adjusted.
func CountFloat(cal calendar.Calendar, pred, adjusted time.Time) int {
	slack := 0
	d := adjusted
	for pred.Before(d) {
		d = d.AddDate(0, 0, -1)
		if cal.IsWorkingDay(d) {
			slack++
		}
	}
	return slack
}
