package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/dto"
	"github.com/Abdullah-819/786Times/internal/middleware"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type sectionStore interface {
	SaveSection(ctx context.Context, code models.SectionCode) error
	GetSelectedSection(ctx context.Context) (models.SectionCode, error)
	ClearSection(ctx context.Context) error
	Default() models.SectionCode
}

type sectionCatalogue interface {
	Sections() []models.Section
}

// SectionHandler exposes the section catalogue and the user's selection.
type SectionHandler struct {
	store     sectionStore
	catalogue sectionCatalogue
}

// NewSectionHandler builds a new handler.
func NewSectionHandler(store sectionStore, catalogue sectionCatalogue) *SectionHandler {
	return &SectionHandler{store: store, catalogue: catalogue}
}

// List godoc
// @Summary List sections
// @Tags Sections
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /sections [get]
func (h *SectionHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalogue.Sections())
}

// Current godoc
// @Summary Get the selected section
// @Tags Sections
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /section [get]
func (h *SectionHandler) Current(c *gin.Context) {
	code, err := h.store.GetSelectedSection(c.Request.Context())
	if err != nil {
		middleware.SetDegraded(c, "section storage unavailable")
	}
	response.JSON(c, http.StatusOK, h.describe(code), metaFromContext(c))
}

// Save godoc
// @Summary Select a section
// @Tags Sections
// @Accept json
// @Produce json
// @Param payload body dto.SelectSectionRequest true "Section payload"
// @Success 200 {object} response.Envelope
// @Router /section [put]
func (h *SectionHandler) Save(c *gin.Context) {
	var req dto.SelectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section payload"))
		return
	}
	code := models.SectionCode(req.Section)
	if err := h.store.SaveSection(c.Request.Context(), code); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.describe(code))
}

// Clear godoc
// @Summary Forget the selected section
// @Tags Sections
// @Success 204
// @Router /section [delete]
func (h *SectionHandler) Clear(c *gin.Context) {
	if err := h.store.ClearSection(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *SectionHandler) describe(code models.SectionCode) dto.SectionResponse {
	out := dto.SectionResponse{Code: code, Default: code == h.store.Default()}
	for _, s := range h.catalogue.Sections() {
		if s.Code == code {
			out.Title = s.Title
			break
		}
	}
	return out
}
