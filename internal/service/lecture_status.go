package service

import (
	"fmt"
	"time"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

const completedLabel = "Completed"

// LectureStatus classifies now against the lecture window [start, end) on
// now's calendar day. A lecture is completed from the instant it ends, so a
// zero-length window is completed immediately. Windows crossing midnight are
// not supported.
func LectureStatus(startText, endText string, now time.Time) (models.TimeStatus, error) {
	start, err := timeofday.Parse(startText, now)
	if err != nil {
		return models.TimeStatus{}, invalidTime(err)
	}
	end, err := timeofday.Parse(endText, now)
	if err != nil {
		return models.TimeStatus{}, invalidTime(err)
	}

	switch {
	case now.Before(start):
		minutes := int(start.Sub(now) / time.Minute)
		return models.TimeStatus{
			Label:          fmt.Sprintf("Upcoming (%dm)", minutes),
			Progress:       0,
			IsUpcoming:     true,
			MinutesToStart: &minutes,
		}, nil
	case now.Before(end):
		progress := float64(now.Sub(start)) / float64(end.Sub(start))
		remaining := int(end.Sub(now) / time.Minute)
		return models.TimeStatus{
			Label:    fmt.Sprintf("In Progress (%dm left)", remaining),
			Progress: clamp01(progress),
			IsActive: true,
		}, nil
	default:
		return models.TimeStatus{
			Label:       completedLabel,
			Progress:    1,
			IsCompleted: true,
		}, nil
	}
}

// StatusesFor computes the status of every lecture. A lecture whose times do
// not parse carries the error text instead of a status.
func StatusesFor(lectures []models.Lecture, now time.Time) []models.LectureWithStatus {
	out := make([]models.LectureWithStatus, 0, len(lectures))
	for _, l := range lectures {
		item := models.LectureWithStatus{Lecture: l}
		status, err := LectureStatus(l.Start, l.End, now)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Status = &status
		}
		out = append(out, item)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
