package store

import (
	"errors"
	"time"

	"github.com/amiralz/calendar-backend/internal/models"
)

// ErrEventNotFound is returned when an event id does not exist.
var ErrEventNotFound = errors.New("event not found")

// ValidationError marks a rejected request payload. Handlers translate it to
// a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// EventStore abstracts event persistence. DatabaseStore keeps events in a
// relational table; ClientStore leaves persistence to the browser and only
// serves the preset holidays.
type EventStore interface {
	// ListAll returns every event grouped by ISO date. Insertion order is
	// preserved within a date.
	ListAll() (map[string][]models.EventResponse, error)

	// ListRange returns events with start <= date < end, ordered by id.
	ListRange(start, end time.Time) ([]models.Event, error)

	// Create validates the request and persists a new event.
	Create(req models.CreateEventRequest) (models.Event, error)

	// Update applies the non-nil patch fields to an existing event.
	Update(id uint, patch models.EventPatch) (models.Event, error)

	// Delete removes an event permanently.
	Delete(id uint) error

	// EnsureSeeded inserts the preset holidays that are not yet present,
	// keyed by (date, title). Safe to run more than once.
	EnsureSeeded() error
}
