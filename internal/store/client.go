package store

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/amiralz/calendar-backend/internal/helpers"
	"github.com/amiralz/calendar-backend/internal/models"
)

// ClientStore is the no-persistence mode: the browser owns user events in its
// own storage, and the server only serves the preset holidays. Create and
// Delete are acknowledged without persisting anything so the client API stays
// uniform across modes; Update reports not-found because there is no
// server-side record to patch.
type ClientStore struct {
	presets []models.Event
	nextID  atomic.Uint64
}

func NewClientStore() *ClientStore {
	dates := make([]string, 0, len(models.PresetEvents))
	for date := range models.PresetEvents {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	s := &ClientStore{}
	for i, dateStr := range dates {
		preset := models.PresetEvents[dateStr]
		date, _ := helpers.ParseDate(dateStr)
		s.presets = append(s.presets, models.Event{
			ID:        uint(i + 1),
			Title:     preset.Title,
			Date:      date,
			EventType: preset.Type,
			Color:     preset.Color,
		})
	}
	s.nextID.Store(uint64(len(s.presets)))
	return s
}

func (s *ClientStore) ListAll() (map[string][]models.EventResponse, error) {
	grouped := make(map[string][]models.EventResponse)
	for _, event := range s.presets {
		key := event.Date.Format(helpers.DateLayout)
		grouped[key] = append(grouped[key], event.Response())
	}
	return grouped, nil
}

func (s *ClientStore) ListRange(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	for _, event := range s.presets {
		if !event.Date.Before(start) && event.Date.Before(end) {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *ClientStore) Create(req models.CreateEventRequest) (models.Event, error) {
	if req.Title == "" || req.Date == "" {
		return models.Event{}, NewValidationError("Title and date are required")
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return models.Event{}, NewValidationError("Invalid date format. Use YYYY-MM-DD.")
	}

	event := models.Event{
		ID:          uint(s.nextID.Add(1)),
		Title:       req.Title,
		Date:        date,
		EventType:   req.Type,
		Color:       req.Color,
		Description: req.Description,
	}
	if event.EventType == "" {
		event.EventType = models.DefaultEventType
	}
	if event.Color == "" {
		event.Color = models.DefaultColor
	}
	return event, nil
}

func (s *ClientStore) Update(id uint, patch models.EventPatch) (models.Event, error) {
	return models.Event{}, ErrEventNotFound
}

func (s *ClientStore) Delete(id uint) error {
	return nil
}

func (s *ClientStore) EnsureSeeded() error {
	return nil
}
