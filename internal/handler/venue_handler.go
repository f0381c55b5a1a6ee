package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/dto"
	"github.com/Abdullah-819/786Times/internal/middleware"
	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/service"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type venueExplorer interface {
	Venues(day models.Weekday, mode models.SlotMode) (models.VenueDay, error)
	SlotMode(ctx context.Context) (models.SlotMode, error)
	SaveSlotMode(ctx context.Context, mode models.SlotMode) error
}

// VenueHandler serves the free and booked venue explorer.
type VenueHandler struct {
	service venueExplorer
	clock   Clock
}

// NewVenueHandler builds a new handler.
func NewVenueHandler(svc venueExplorer, clock Clock) *VenueHandler {
	if clock == nil {
		clock = SystemClock(nil)
	}
	return &VenueHandler{service: svc, clock: clock}
}

// Day godoc
// @Summary Free or booked venues per slot
// @Description Without mode the stored slot mode is used.
// @Tags Venues
// @Produce json
// @Param day path string true "Weekday, or today"
// @Param mode query string false "free or booked"
// @Success 200 {object} response.Envelope
// @Router /venues/{day} [get]
func (h *VenueHandler) Day(c *gin.Context) {
	var day models.Weekday
	if raw := c.Param("day"); raw == "today" {
		day = service.WeekdayOf(h.clock())
	} else {
		parsed, err := weekdayParam(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		day = parsed
	}

	var mode models.SlotMode
	if raw, ok := c.GetQuery("mode"); ok {
		parsed, valid := models.ParseSlotMode(raw)
		if !valid {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "mode must be free or booked"))
			return
		}
		mode = parsed
	} else {
		stored, err := h.service.SlotMode(c.Request.Context())
		if err != nil {
			middleware.SetDegraded(c, "slot mode storage unavailable")
		}
		mode = stored
	}

	venues, err := h.service.Venues(day, mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venues, metaFromContext(c))
}

// GetMode godoc
// @Summary Get the stored slot mode
// @Tags Venues
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /slot-mode [get]
func (h *VenueHandler) GetMode(c *gin.Context) {
	mode, err := h.service.SlotMode(c.Request.Context())
	if err != nil {
		middleware.SetDegraded(c, "slot mode storage unavailable")
	}
	response.JSON(c, http.StatusOK, dto.SlotModeResponse{Mode: mode}, metaFromContext(c))
}

// SaveMode godoc
// @Summary Store the slot mode
// @Tags Venues
// @Accept json
// @Produce json
// @Param payload body dto.SlotModeRequest true "Slot mode payload"
// @Success 200 {object} response.Envelope
// @Router /slot-mode [put]
func (h *VenueHandler) SaveMode(c *gin.Context) {
	var req dto.SlotModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid slot mode payload"))
		return
	}
	mode := models.SlotMode(req.Mode)
	if err := h.service.SaveSlotMode(c.Request.Context(), mode); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SlotModeResponse{Mode: mode})
}
