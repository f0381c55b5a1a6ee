package service

import (
	"math"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

const (
	lowIntensityMaxHours      = 3.0
	moderateIntensityMaxHours = 5.0
)

// ContactHours sums the scheduled hours of lectures. Entries whose times do
// not parse contribute nothing.
func ContactHours(lectures []models.Lecture) float64 {
	total := 0.0
	for _, l := range lectures {
		start, err := timeofday.Hours(l.Start)
		if err != nil {
			continue
		}
		end, err := timeofday.Hours(l.End)
		if err != nil {
			continue
		}
		total += math.Max(0, end-start)
	}
	return total
}

// ClassifyHours maps contact hours onto an intensity tier. Each tier is
// inclusive at its upper bound.
func ClassifyHours(total float64) models.Intensity {
	switch {
	case total <= lowIntensityMaxHours:
		return models.IntensityLow
	case total <= moderateIntensityMaxHours:
		return models.IntensityModerate
	default:
		return models.IntensityHigh
	}
}

// CalculateIntensity classifies a day's lectures.
func CalculateIntensity(lectures []models.Lecture) models.Intensity {
	return ClassifyHours(ContactHours(lectures))
}
