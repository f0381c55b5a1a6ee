package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/service"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type eventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	AddEvent(ctx context.Context, req service.CreateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventCalendar interface {
	EventsICS(ctx context.Context) ([]byte, error)
}

// EventHandler exposes the personal events list.
type EventHandler struct {
	service  eventService
	calendar eventCalendar
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService, calendar eventCalendar) *EventHandler {
	return &EventHandler{service: service, calendar: calendar}
}

// List godoc
// @Summary List events by date
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, map[string]interface{}{"total": len(events)})
}

// Create godoc
// @Summary Add an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	event, err := h.service.AddEvent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportICS godoc
// @Summary Download events as iCalendar
// @Tags Events
// @Produce text/calendar
// @Success 200 {file} file
// @Router /events/export.ics [get]
func (h *EventHandler) ExportICS(c *gin.Context) {
	body, err := h.calendar.EventsICS(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, "events.ics", "text/calendar; charset=utf-8", body)
}
