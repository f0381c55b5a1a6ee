package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/dto"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type reminderService interface {
	Permission(ctx context.Context) (models.NotificationPermission, error)
	SetPermission(ctx context.Context, granted bool) (models.NotificationPermission, error)
	Schedule(ctx context.Context, lecture models.Lecture, day models.Weekday, now time.Time) (*models.Reminder, error)
	Cancel(id string) error
	Pending() []models.Reminder
}

type lectureFinder interface {
	FindLecture(section models.SectionCode, id string) (models.Lecture, models.Weekday, error)
	SelectedSection(ctx context.Context) models.SectionCode
}

// ReminderHandler exposes notification permission and class reminders.
type ReminderHandler struct {
	service  reminderService
	lectures lectureFinder
	clock    Clock
}

// NewReminderHandler constructs the handler.
func NewReminderHandler(service reminderService, lectures lectureFinder, clock Clock) *ReminderHandler {
	if clock == nil {
		clock = time.Now
	}
	return &ReminderHandler{service: service, lectures: lectures, clock: clock}
}

// GetPermission godoc
// @Summary Notification permission
// @Tags Reminders
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications/permission [get]
func (h *ReminderHandler) GetPermission(c *gin.Context) {
	status, err := h.service.Permission(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PermissionResponse{Status: status})
}

// SetPermission godoc
// @Summary Grant or revoke notification permission
// @Tags Reminders
// @Accept json
// @Produce json
// @Param payload body dto.PermissionRequest true "Permission payload"
// @Success 200 {object} response.Envelope
// @Router /notifications/permission [put]
func (h *ReminderHandler) SetPermission(c *gin.Context) {
	var req dto.PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid permission payload"))
		return
	}
	status, err := h.service.SetPermission(c.Request.Context(), *req.Granted)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PermissionResponse{Status: status})
}

// Schedule godoc
// @Summary Schedule a class reminder
// @Description Fires ten minutes before the next class of the lecture, or almost immediately when that moment has passed today.
// @Tags Reminders
// @Accept json
// @Produce json
// @Param payload body dto.ScheduleReminderRequest true "Reminder payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /reminders [post]
func (h *ReminderHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reminder payload"))
		return
	}
	section := models.SectionCode(req.Section)
	if section == "" {
		section = h.lectures.SelectedSection(c.Request.Context())
	}
	lecture, day, err := h.lectures.FindLecture(section, req.LectureID)
	if err != nil {
		response.Error(c, err)
		return
	}
	reminder, err := h.service.Schedule(c.Request.Context(), lecture, day, h.clock())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reminder)
}

// List godoc
// @Summary Pending reminders
// @Tags Reminders
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Pending())
}

// Cancel godoc
// @Summary Cancel a pending reminder
// @Tags Reminders
// @Param id path string true "Reminder ID"
// @Success 204
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
