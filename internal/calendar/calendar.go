package calendar

import (
	"time"

	"github.com/adiwarna/maintenance-management/internal/request"
)

// DefaultMaxPerDay caps how many requests a day cell lists before collapsing
// the rest into a remainder count.
const DefaultMaxPerDay = 3

// Month identifies a calendar month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Previous steps back one month, rolling January over to December of the
// prior year.
func (m Month) Previous() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next steps forward one month, rolling December over to January of the
// next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m Month) FirstWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Day is one cell in the month grid.
type Day struct {
	Day       int                `json:"day"`
	Items     []*request.Request `json:"items"`
	Remainder int                `json:"remainder"`
}

// MonthView is the fully projected month.
type MonthView struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	DaysInMonth  int        `json:"days_in_month"`
	FirstWeekday int        `json:"first_weekday"`
	Previous     Month      `json:"previous"`
	Next         Month      `json:"next"`
	Days         []Day      `json:"days"`
}

// Project buckets requests into day cells by scheduled date. Requests without
// a scheduled date, or scheduled outside the month, are left out. Each cell
// holds at most maxPerDay items; the rest become the remainder count.
func Project(requests []*request.Request, month Month, maxPerDay int) MonthView {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}

	daysInMonth := month.Days()
	buckets := make([][]*request.Request, daysInMonth+1)

	for _, req := range requests {
		if req.ScheduledDate == nil {
			continue
		}
		scheduled := req.ScheduledDate
		if scheduled.Year() != month.Year || scheduled.Month() != month.Month {
			continue
		}
		day := scheduled.Day()
		buckets[day] = append(buckets[day], req)
	}

	view := MonthView{
		Year:         month.Year,
		Month:        month.Month,
		DaysInMonth:  daysInMonth,
		FirstWeekday: int(month.FirstWeekday()),
		Previous:     month.Previous(),
		Next:         month.Next(),
		Days:         make([]Day, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		cell := Day{Day: day, Items: buckets[day]}
		if len(cell.Items) > maxPerDay {
			cell.Remainder = len(cell.Items) - maxPerDay
			cell.Items = cell.Items[:maxPerDay]
		}
		if cell.Items == nil {
			cell.Items = []*request.Request{}
		}
		view.Days[day-1] = cell
	}
	return view
}
