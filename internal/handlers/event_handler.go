package handlers

import (
	"errors"
	"net/http"

	"github.com/amiralz/calendar-backend/internal/helpers"
	"github.com/amiralz/calendar-backend/internal/middleware"
	"github.com/amiralz/calendar-backend/internal/models"
	"github.com/amiralz/calendar-backend/internal/store"
	"github.com/gin-gonic/gin"
)

func respondStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		helpers.RespondWithError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, store.ErrEventNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}

func ListEvents(c *gin.Context) {
	eventStore := middleware.GetEventStore(c)
	if eventStore == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	grouped, err := eventStore.ListAll()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

func CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	eventStore := middleware.GetEventStore(c)
	if eventStore == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	event, err := eventStore.Create(req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event created successfully",
		"event":   event.Response(),
	})
}

func UpdateEvent(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	eventStore := middleware.GetEventStore(c)
	if eventStore == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	event, err := eventStore.Update(uint(id), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event updated successfully",
		"event":   event.Response(),
	})
}

func DeleteEvent(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	eventStore := middleware.GetEventStore(c)
	if eventStore == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	if err := eventStore.Delete(uint(id)); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
	})
}
