// Package calendar builds the month view served by the calendar API: the
// Monday-first day grid plus the events falling inside the month.
package calendar

import (
	"time"

	"github.com/amiralz/calendar-backend/internal/helpers"
	"github.com/amiralz/calendar-backend/internal/models"
	"github.com/amiralz/calendar-backend/internal/store"
)

// Years the UI can navigate to.
const (
	MinYear = 2025
	MaxYear = 2035
)

// Data is the response body of GET /api/calendar/:year/:month.
type Data struct {
	Year        int                               `json:"year"`
	Month       int                               `json:"month"`
	MonthName   string                            `json:"month_name"`
	Calendar    [][]int                           `json:"calendar"`
	Events      map[string][]models.EventResponse `json:"events"`
	EventColors map[string]string                 `json:"event_colors"`
}

// MonthGrid returns the month as a week-major matrix of day numbers. Weeks
// start on Monday and days outside the month are zero, so a 31-day month
// starting on a Sunday yields six rows.
func MonthGrid(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday counts from Sunday; shift so Monday is column 0.
	col := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Assemble validates the year/month bounds, fetches the month's events from
// the store and combines them with the grid.
func Assemble(s store.EventStore, year, month int) (*Data, error) {
	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		return nil, store.NewValidationError("Invalid year or month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	events, err := s.ListRange(start, end)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.EventResponse)
	for _, event := range events {
		key := event.Date.Format(helpers.DateLayout)
		grouped[key] = append(grouped[key], event.Response())
	}

	return &Data{
		Year:        year,
		Month:       month,
		MonthName:   time.Month(month).String(),
		Calendar:    MonthGrid(year, month),
		Events:      grouped,
		EventColors: models.EventColors,
	}, nil
}

// Years returns the navigable year range in ascending order.
func Years() []int {
	years := make([]int, 0, MaxYear-MinYear+1)
	for year := MinYear; year <= MaxYear; year++ {
		years = append(years, year)
	}
	return years
}
