// Package services – month calendar builder
//
// This file implements the pure calendar-grid construction used by the
// monthly view: a Monday-first matrix of weeks × 7 day cells, with
// placeholder cells padding the edges so every row spans a full week, plus
// the previous/next month navigation arithmetic. Building a calendar has no
// side effects and touches no storage; the caller fetches the month's
// appointments beforehand and passes them in.
package services

import (
	"time"

	"github.com/salonsuite/go-salon-backend/internal/domain"
)

// Representable calendar years. time.Date handles values far outside this,
// but the display layer (and the original system) only deals in
// four-digit years.
const (
	minCalendarYear = 1
	maxCalendarYear = 9999
)

// CalendarDay is one cell of the month grid. Placeholder cells (days that
// belong to the adjacent month) have a nil Date and no appointments.
type CalendarDay struct {
	Date         *time.Time           `json:"date,omitempty"`
	Appointments []domain.Appointment `json:"appointments"`
}

// Placeholder reports whether the cell pads the grid rather than
// representing a day of the target month.
func (d CalendarDay) Placeholder() bool { return d.Date == nil }

// MonthCalendar is the display-ready month grid plus navigation targets.
type MonthCalendar struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	// Weeks holds 4–6 rows of exactly 7 cells each, Monday first.
	Weeks [][]CalendarDay `json:"weeks"`

	// Navigation pairs, computed with plain arithmetic.
	PrevYear  int        `json:"prev_year"`
	PrevMonth time.Month `json:"prev_month"`
	NextYear  int        `json:"next_year"`
	NextMonth time.Month `json:"next_month"`
}

// NormalizeYearMonth applies the single-step month overflow rule used for
// calendar navigation: month 0 maps to December of the previous year and
// month 13 to January of the next. Values already in 1..12 pass through.
func NormalizeYearMonth(year, month int) (int, int) {
	if month < 1 {
		return year - 1, 12
	}
	if month > 12 {
		return year + 1, 1
	}
	return year, month
}

// MonthRange returns the first and last day of the (normalized) month.
func MonthRange(year, month int) (first, last time.Time) {
	year, month = NormalizeYearMonth(year, month)
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// BuildMonthCalendar turns (year, month, appointments) into a month grid.
//
// Month overflow is normalized first, so BuildMonthCalendar(y, 0, …) equals
// BuildMonthCalendar(y-1, 12, …). Each non-placeholder cell carries its
// concrete date and the subsequence of appointments whose date component
// equals that date, in input order. Years outside the representable range
// fail with ErrCalendarOutOfRange; nothing else can fail.
func BuildMonthCalendar(year, month int, appointments []domain.Appointment) (*MonthCalendar, error) {
	year, month = NormalizeYearMonth(year, month)
	if year < minCalendarYear || year > maxCalendarYear {
		return nil, ErrCalendarOutOfRange
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first column index of the 1st.
	lead := (int(first.Weekday()) + 6) % 7

	cells := make([]CalendarDay, 0, lead+daysInMonth+6)
	for i := 0; i < lead; i++ {
		cells = append(cells, CalendarDay{Appointments: []domain.Appointment{}})
	}
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, time.Month(month), dayNum, 0, 0, 0, 0, time.Local)
		cells = append(cells, CalendarDay{
			Date:         &date,
			Appointments: appointmentsOn(appointments, year, time.Month(month), dayNum),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, CalendarDay{Appointments: []domain.Appointment{}})
	}

	weeks := make([][]CalendarDay, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	cal := &MonthCalendar{
		Year:  year,
		Month: time.Month(month),
		Weeks: weeks,
	}
	cal.PrevYear, cal.PrevMonth = prevYearMonth(year, month)
	cal.NextYear, cal.NextMonth = nextYearMonth(year, month)
	return cal, nil
}

// appointmentsOn filters appointments whose date component is
// year/month/day, preserving input order.
func appointmentsOn(appointments []domain.Appointment, year int, month time.Month, day int) []domain.Appointment {
	out := []domain.Appointment{}
	for _, a := range appointments {
		y, m, d := a.StartsAt.Date()
		if y == year && m == month && d == day {
			out = append(out, a)
		}
	}
	return out
}

func prevYearMonth(year, month int) (int, time.Month) {
	if month > 1 {
		return year, time.Month(month - 1)
	}
	return year - 1, time.December
}

func nextYearMonth(year, month int) (int, time.Month) {
	if month < 12 {
		return year, time.Month(month + 1)
	}
	return year + 1, time.January
}

// spanishMonths mirrors the month_name display filter of the original
// system; the salon UI is Spanish-language.
var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish display name for m, or "" when m is not a
// valid month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return spanishMonths[m-1]
}
