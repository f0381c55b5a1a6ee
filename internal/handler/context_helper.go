package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abdullah-819/786Times/internal/middleware"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// Clock returns the current wall time in the campus timezone.
type Clock func() time.Time

// SystemClock reads the system clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

func metaFromContext(c *gin.Context) map[string]interface{} {
	return middleware.ExtractMeta(c)
}

func sectionParam(raw string) (models.SectionCode, error) {
	if raw == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "section is required")
	}
	return models.SectionCode(raw), nil
}

func weekdayParam(raw string) (models.Weekday, error) {
	day, ok := models.ParseWeekday(raw)
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "unknown day "+raw)
	}
	return day, nil
}
