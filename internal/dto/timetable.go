package dto

import (
	"time"

	"github.com/Abdullah-819/786Times/internal/models"
)

// SelectSectionRequest selects the active section.
type SelectSectionRequest struct {
	Section string `json:"section" binding:"required"`
}

// SectionResponse describes the selected section.
type SectionResponse struct {
	Code    models.SectionCode `json:"code"`
	Title   string             `json:"title,omitempty"`
	Default bool               `json:"default"`
}

// StatusResponse carries live lecture statuses for a day.
type StatusResponse struct {
	Section     models.SectionCode         `json:"section"`
	Day         models.Weekday             `json:"day"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Items       []models.LectureWithStatus `json:"items"`
}

// DhikrResponse wraps a dhikr reminder.
type DhikrResponse struct {
	Text string `json:"text"`
}

// SlotModeRequest stores the venue explorer mode.
type SlotModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=free booked"`
}

// SlotModeResponse reports the stored explorer mode.
type SlotModeResponse struct {
	Mode models.SlotMode `json:"mode"`
}
