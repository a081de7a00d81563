package scheduler

import (
	"testing"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFloat_HolidayPredecessorFinish(t *testing.T) {
	pred := testutil.NewTestRow(1, testutil.WithDates("2023-12-27", "2024-01-01"))
	succ := testutil.NewTestRow(2, testutil.WithDates("2024-01-05", "2024-01-09"))

	days, ok := testCalculator().Float(FloatInput{Predecessor: pred, Successor: &succ})

	assert.True(t, ok)
	assert.Equal(t, 3, days, "Jan 2, 3 and 4 are the working days in between")
}

func TestAdjustForLag_WalksOverWeekend(t *testing.T) {
	adjusted, walked := AdjustForLag(testCalendar(), jan(8), 2)

	assert.Equal(t, jan(4), adjusted)
	assert.Equal(t, 4, walked)
}

func TestAdjustForLag_ZeroLagIsNoop(t *testing.T) {
	cal := testCalendar()
	for day := 1; day <= 31; day++ {
		adjusted, walked := AdjustForLag(cal, jan(day), 0)
		assert.Equal(t, jan(day), adjusted)
		assert.Zero(t, walked)
	}
}

func TestAdjustForLag_NegativeLagIsNoop(t *testing.T) {
	adjusted, walked := AdjustForLag(testCalendar(), jan(8), -3)
	assert.Equal(t, jan(8), adjusted)
	assert.Zero(t, walked)
}

func TestAdjustForLag_FractionalLagRoundsUp(t *testing.T) {
	adjusted, walked := AdjustForLag(testCalendar(), jan(8), 1.5)
	assert.Equal(t, jan(4), adjusted)
	assert.Equal(t, 4, walked)
}

func TestAdjustForLag_NoWorkingDaysTerminates(t *testing.T) {
	_, walked := AdjustForLag(calendar.New(nil, nil), jan(8), 1)
	assert.Equal(t, maxLagWalk, walked)
}

func TestCountFloat_PredecessorNotBeforeSuccessor(t *testing.T) {
	cal := testCalendar()
	assert.Zero(t, CountFloat(cal, jan(10), jan(8)))
	assert.Zero(t, CountFloat(cal, jan(8), jan(8)))
}

func TestFloat_FinishToStart_PredecessorAfterSuccessor(t *testing.T) {
	pred := testutil.NewTestRow(1, testutil.WithDates("2024-01-08", "2024-01-10"))
	succ := testutil.NewTestRow(2, testutil.WithDates("2024-01-08", "2024-01-12"))

	days, ok := testCalculator().Float(FloatInput{Predecessor: pred, Successor: &succ, Type: domain.FinishToStart})
	assert.True(t, ok)
	assert.Zero(t, days)
}

func TestFloat_DependencyTypes(t *testing.T) {
	pred := testutil.NewTestRow(1, testutil.WithDates("2024-01-02", "2024-01-04"))
	succ := testutil.NewTestRow(2, testutil.WithDates("2024-01-09", "2024-01-12"))

	tests := []struct {
		typ  domain.DependencyType
		want int
	}{
		{domain.FinishToStart, 3},  // Jan 4 .. Jan 9
		{domain.StartToStart, 5},   // Jan 2 .. Jan 9
		{domain.FinishToFinish, 6}, // Jan 4 .. Jan 12
		{domain.StartToFinish, 8},  // Jan 2 .. Jan 12
		{domain.ParseDependencyType("??"), 3},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			days, ok := testCalculator().Float(FloatInput{Predecessor: pred, Successor: &succ, Type: tt.typ})
			assert.True(t, ok)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestDateColumns(t *testing.T) {
	cols := testColumns()

	p, s := DateColumns(domain.FinishToStart, cols)
	assert.Equal(t, [2]int64{cols.EndDate, cols.StartDate}, [2]int64{p, s})
	p, s = DateColumns(domain.StartToStart, cols)
	assert.Equal(t, [2]int64{cols.StartDate, cols.StartDate}, [2]int64{p, s})
	p, s = DateColumns(domain.FinishToFinish, cols)
	assert.Equal(t, [2]int64{cols.EndDate, cols.EndDate}, [2]int64{p, s})
	p, s = DateColumns(domain.StartToFinish, cols)
	assert.Equal(t, [2]int64{cols.StartDate, cols.EndDate}, [2]int64{p, s})
}

func TestFloat_WithLag(t *testing.T) {
	pred := testutil.NewTestRow(1, testutil.WithDates("2023-12-28", "2024-01-02"))
	succ := testutil.NewTestRow(2, testutil.WithDates("2024-01-08", "2024-01-10"))

	days, ok := testCalculator().Float(FloatInput{Predecessor: pred, Successor: &succ, LagDays: 2})

	assert.True(t, ok)
	assert.Equal(t, 2, days, "lag moves the successor back to Jan 4")
}

func TestFloat_ExplicitSuccessorDate(t *testing.T) {
	pred := testutil.NewTestRow(1, testutil.WithDates("2024-01-02", "2024-01-04"))
	completion := jan(12)

	days, ok := testCalculator().Float(FloatInput{Predecessor: pred, SuccessorDate: &completion})

	assert.True(t, ok)
	assert.Equal(t, 6, days)
}

func TestFloat_MissingDates(t *testing.T) {
	good := testutil.NewTestRow(1, testutil.WithDates("2024-01-02", "2024-01-04"))
	blank := testutil.NewTestRow(2, testutil.WithDates("", ""))
	garbled := testutil.NewTestRow(3, testutil.WithDates("tbd", "tbd"))
	completion := jan(12)

	tests := []struct {
		name string
		in   FloatInput
	}{
		{"blank predecessor", FloatInput{Predecessor: blank, Successor: &good}},
		{"garbled predecessor", FloatInput{Predecessor: garbled, SuccessorDate: &completion}},
		{"blank successor", FloatInput{Predecessor: good, Successor: &blank}},
		{"garbled successor", FloatInput{Predecessor: good, Successor: &garbled}},
		{"no successor", FloatInput{Predecessor: good}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := testCalculator().Float(tt.in)
			assert.False(t, ok)
		})
	}
}
