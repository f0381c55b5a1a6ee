package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/dto"
	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/refresh"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type scheduleService interface {
	Today(ctx context.Context, now time.Time) (models.DaySchedule, error)
	Day(section models.SectionCode, day models.Weekday) ([]models.Lecture, error)
	StatusesAt(lectures []models.Lecture, now time.Time) []models.LectureWithStatus
}

type streamObserver interface {
	StreamOpened() func()
}

// ScheduleHandler serves today's timetable and live lecture status.
type ScheduleHandler struct {
	service   scheduleService
	refresher *refresh.Refresher
	clock     Clock
	streams   streamObserver
	logger    *zap.Logger
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc scheduleService, refresher *refresh.Refresher, clock Clock, streams streamObserver, logger *zap.Logger) *ScheduleHandler {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleHandler{service: svc, refresher: refresher, clock: clock, streams: streams, logger: logger}
}

// Today godoc
// @Summary Today's lectures for the selected section
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/today [get]
func (h *ScheduleHandler) Today(c *gin.Context) {
	day, err := h.service.Today(c.Request.Context(), h.clock())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

// Status godoc
// @Summary Live status of today's lectures
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/today/status [get]
func (h *ScheduleHandler) Status(c *gin.Context) {
	now := h.clock()
	day, err := h.service.Today(c.Request.Context(), now)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StatusResponse{
		Section:     day.Section,
		Day:         day.Day,
		GeneratedAt: now,
		Items:       h.service.StatusesAt(day.Lectures, now),
	})
}

// Stream godoc
// @Summary Server-sent lecture status updates
// @Description Emits one "status" event per lecture immediately and after every refresh interval until the client disconnects.
// @Tags Schedule
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /schedule/today/stream [get]
func (h *ScheduleHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	day, err := h.service.Today(ctx, h.clock())
	if err != nil {
		response.Error(c, err)
		return
	}

	updates := make(chan models.LectureWithStatus, len(day.Lectures)+1)
	subs := make([]*refresh.Subscription, 0, len(day.Lectures))
	defer func() {
		for _, sub := range subs {
			sub.Stop()
		}
	}()
	for _, lecture := range day.Lectures {
		sub, err := h.refresher.Watch(lecture, func(item models.LectureWithStatus) {
			select {
			case updates <- item:
			default:
			}
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		subs = append(subs, sub)
	}

	if h.streams != nil {
		defer h.streams.StreamOpened()()
	}
	h.logger.Debug("status stream opened", zap.String("section", string(day.Section)), zap.Int("lectures", len(subs)))

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("schedule", day)
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case item := <-updates:
			c.SSEvent("status", item)
			return true
		}
	})
	h.logger.Debug("status stream closed", zap.String("section", string(day.Section)))
}

// Day godoc
// @Summary Static lectures of a section on a weekday
// @Tags Schedule
// @Produce json
// @Param section path string true "Section code"
// @Param day path string true "Weekday, e.g. monday or mon"
// @Success 200 {object} response.Envelope
// @Router /schedule/{section}/{day} [get]
func (h *ScheduleHandler) Day(c *gin.Context) {
	section, err := sectionParam(c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	day, err := weekdayParam(c.Param("day"))
	if err != nil {
		response.Error(c, err)
		return
	}
	lectures, err := h.service.Day(section, day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lectures)
}
