package middleware

import (
	"github.com/amiralz/calendar-backend/internal/store"
	"github.com/gin-gonic/gin"
)

func EventStoreMiddleware(s store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("event_store", s)
		c.Next()
	}
}

func GetEventStore(c *gin.Context) store.EventStore {
	s, exists := c.Get("event_store")
	if !exists {
		return nil
	}
	return s.(store.EventStore)
}
