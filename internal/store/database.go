package store

import (
	"errors"
	"time"

	"github.com/amiralz/calendar-backend/internal/helpers"
	"github.com/amiralz/calendar-backend/internal/models"
	"gorm.io/gorm"
)

// DatabaseStore persists events through GORM. Every mutation runs inside a
// transaction so a failure leaves no partial write behind.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) ListAll() (map[string][]models.EventResponse, error) {
	var events []models.Event
	if err := s.db.Order("id").Find(&events).Error; err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.EventResponse)
	for _, event := range events {
		key := event.Date.Format(helpers.DateLayout)
		grouped[key] = append(grouped[key], event.Response())
	}
	return grouped, nil
}

func (s *DatabaseStore) ListRange(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("date >= ? AND date < ?", start, end).Order("id").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *DatabaseStore) Create(req models.CreateEventRequest) (models.Event, error) {
	if req.Title == "" || req.Date == "" {
		return models.Event{}, NewValidationError("Title and date are required")
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return models.Event{}, NewValidationError("Invalid date format. Use YYYY-MM-DD.")
	}

	event := models.Event{
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

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *DatabaseStore) Update(id uint, patch models.EventPatch) (models.Event, error) {
	var event models.Event
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if patch.Title != nil {
			event.Title = *patch.Title
		}
		if patch.Date != nil {
			date, err := helpers.ParseDate(*patch.Date)
			if err != nil {
				return NewValidationError("Invalid date format. Use YYYY-MM-DD.")
			}
			event.Date = date
		}
		if patch.Type != nil {
			event.EventType = *patch.Type
		}
		if patch.Color != nil {
			event.Color = *patch.Color
		}
		if patch.Description != nil {
			event.Description = *patch.Description
		}

		return tx.Save(&event).Error
	})
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *DatabaseStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}

func (s *DatabaseStore) EnsureSeeded() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for dateStr, preset := range models.PresetEvents {
			date, err := helpers.ParseDate(dateStr)
			if err != nil {
				return err
			}

			var existing models.Event
			err = tx.Where("date = ? AND title = ?", date, preset.Title).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			event := models.Event{
				Title:     preset.Title,
				Date:      date,
				EventType: preset.Type,
				Color:     preset.Color,
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
