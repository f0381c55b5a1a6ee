package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/service"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type timetableExporter interface {
	Timetable(section models.SectionCode, format string, from time.Time) (*service.ExportFile, error)
}

type selectedSection interface {
	SelectedSection(ctx context.Context) models.SectionCode
}

// ExportHandler serves timetable downloads.
type ExportHandler struct {
	exporter timetableExporter
	sections selectedSection
	clock    Clock
}

// NewExportHandler constructs the handler.
func NewExportHandler(exporter timetableExporter, sections selectedSection, clock Clock) *ExportHandler {
	if clock == nil {
		clock = time.Now
	}
	return &ExportHandler{exporter: exporter, sections: sections, clock: clock}
}

// Timetable godoc
// @Summary Download the weekly timetable
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Produce text/calendar
// @Param format query string false "csv, pdf or ics" default(csv)
// @Param section query string false "Section code, defaults to the selected section"
// @Param from query string false "First date for calendar recurrence (YYYY-MM-DD), defaults to today"
// @Success 200 {file} file
// @Router /timetable/export [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	section := models.SectionCode(c.Query("section"))
	if section == "" {
		section = h.sections.SelectedSection(c.Request.Context())
	}
	now := h.clock()
	from := now
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "from must be YYYY-MM-DD"))
			return
		}
		from = parsed
	}
	file, err := h.exporter.Timetable(section, c.DefaultQuery("format", service.FormatCSV), from)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
