package handlers

import (
	"net/http"

	"github.com/amiralz/calendar-backend/internal/calendar"
	"github.com/amiralz/calendar-backend/internal/helpers"
	"github.com/amiralz/calendar-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func GetCalendar(c *gin.Context) {
	year, err := helpers.StringToInt(c.Param("year"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid year or month")
		return
	}
	month, err := helpers.StringToInt(c.Param("month"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid year or month")
		return
	}

	eventStore := middleware.GetEventStore(c)
	if eventStore == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Event store not found.")
		return
	}

	data, err := calendar.Assemble(eventStore, year, month)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func GetYears(c *gin.Context) {
	c.JSON(http.StatusOK, calendar.Years())
}
