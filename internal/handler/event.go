package handler

import (
	"net/http"
	"strings"

	"clubhub-backend/internal/models"
	"clubhub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type createEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date" binding:"required"` // expect ISO8601 or "YYYY-MM-DD"
	ClubID      string `json:"clubId" binding:"required"`
}

type updateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Date        *string `json:"date"`
	ClubID      *string `json:"clubId"`
}

const badDate = "invalid date format (use RFC3339 or YYYY-MM-DD)"

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var body createEventRequest
	if !bindJSON(c, &body) {
		return
	}
	date, ok := parseDate(body.Date)
	if !ok {
		jsonError(c, http.StatusBadRequest, badDate)
		return
	}

	event, err := h.events.Create(c.Request.Context(), models.CreateEventInput{
		Name:        strings.TrimSpace(body.Name),
		Description: body.Description,
		Location:    body.Location,
		Date:        date,
		ClubID:      body.ClubID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	var body updateEventRequest
	if !bindJSON(c, &body) {
		return
	}
	in := models.UpdateEventInput{
		Name:        body.Name,
		Description: body.Description,
		Location:    body.Location,
		ClubID:      body.ClubID,
	}
	if body.Date != nil {
		date, ok := parseDate(*body.Date)
		if !ok {
			jsonError(c, http.StatusBadRequest, badDate)
			return
		}
		in.Date = &date
	}

	event, err := h.events.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
