package models

import (
	"time"
)

const (
	DefaultEventType = "custom"
	DefaultColor     = "#5B9BD5"
)

type Event struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Date        time.Time `gorm:"type:date;not null"`
	EventType   string    `gorm:"size:50"`
	Color       string    `gorm:"size:7"`
	Description string
}

// EventResponse is the wire representation of an Event. The GORM model is
// never marshaled directly so the date always serializes as YYYY-MM-DD.
type EventResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (e Event) Response() EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format("2006-01-02"),
		Type:        e.EventType,
		Color:       e.Color,
		Description: e.Description,
	}
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// EventPatch carries a partial update. Only non-nil fields are applied.
type EventPatch struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}
