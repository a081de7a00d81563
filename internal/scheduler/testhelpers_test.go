package scheduler

import (
	"time"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/testutil"
)

func testColumns() Columns {
	return Columns{
		Predecessor: testutil.ColPredecessor,
		StartDate:   testutil.ColStart,
		EndDate:     testutil.ColEnd,
		Float:       testutil.ColFloat,
	}
}

func testCalendar() calendar.Calendar {
	return calendar.New(testutil.Weekdays, []string{testutil.HolidayNewYear})
}

func testCalculator() Calculator {
	return NewCalculator(testCalendar(), testColumns())
}

func jan(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}
