package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/dto"
	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/response"
)

type introService interface {
	NextIntro(ctx context.Context) (models.IntroVerse, error)
	RandomQuote() (models.Quote, error)
	RandomDhikr() (string, error)
}

// IntroHandler serves devotional content.
type IntroHandler struct {
	service introService
}

// NewIntroHandler constructs the handler.
func NewIntroHandler(service introService) *IntroHandler {
	return &IntroHandler{service: service}
}

// Intro godoc
// @Summary Next verse in the intro rotation
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /intro [get]
func (h *IntroHandler) Intro(c *gin.Context) {
	verse, err := h.service.NextIntro(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, verse)
}

// Quote godoc
// @Summary Random dashboard quote
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /quotes/random [get]
func (h *IntroHandler) Quote(c *gin.Context) {
	quote, err := h.service.RandomQuote()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, quote)
}

// Dhikr godoc
// @Summary Random dhikr reminder
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dhikr/random [get]
func (h *IntroHandler) Dhikr(c *gin.Context) {
	text, err := h.service.RandomDhikr()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.DhikrResponse{Text: text})
}
