package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type analyticsService interface {
	Weekly(section models.SectionCode) (models.WeeklyStats, error)
	SelectedSection(ctx context.Context) models.SectionCode
}

// AnalyticsHandler serves semester insights.
type AnalyticsHandler struct {
	service analyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Weekly godoc
// @Summary Weekly load distribution
// @Tags Analytics
// @Produce json
// @Param section query string false "Section code, defaults to the selected section"
// @Success 200 {object} response.Envelope
// @Router /analytics/weekly [get]
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	section := models.SectionCode(c.Query("section"))
	if section == "" {
		section = h.service.SelectedSection(c.Request.Context())
	}
	stats, err := h.service.Weekly(section)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
