package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

type sectionReader interface {
	GetSelectedSection(ctx context.Context) (models.SectionCode, error)
}

type statusObserver interface {
	ObserveStatus(status models.TimeStatus)
}

// ScheduleService answers timetable questions for the selected section.
type ScheduleService struct {
	timetable models.Timetable
	catalogue []models.Section
	sections  sectionReader
	metrics   statusObserver
	logger    *zap.Logger
}

// NewScheduleService constructs the service over a static timetable.
func NewScheduleService(timetable models.Timetable, catalogue []models.Section, sections sectionReader, metrics statusObserver, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timetable == nil {
		timetable = models.Timetable{}
	}
	return &ScheduleService{timetable: timetable, catalogue: catalogue, sections: sections, metrics: metrics, logger: logger}
}

// WeekdayOf maps a timestamp to its timetable key.
func WeekdayOf(t time.Time) models.Weekday {
	return models.Weekday(strings.ToLower(t.Weekday().String()))
}

// NextOccurrence returns the first moment on or after now, at now's clock,
// whose calendar day falls on day.
func NextOccurrence(day models.Weekday, now time.Time) (time.Time, bool) {
	for i := 0; i < 7; i++ {
		candidate := now.AddDate(0, 0, i)
		if WeekdayOf(candidate) == day {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// Sections returns the section catalogue.
func (s *ScheduleService) Sections() []models.Section {
	out := make([]models.Section, len(s.catalogue))
	copy(out, s.catalogue)
	return out
}

// Day returns a section's lectures on day. Days with no entry, such as
// weekends, are empty.
func (s *ScheduleService) Day(section models.SectionCode, day models.Weekday) ([]models.Lecture, error) {
	week, ok := s.timetable[section]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	lectures := week[day]
	out := make([]models.Lecture, len(lectures))
	copy(out, lectures)
	return out, nil
}

// Today returns the selected section's lectures on now's weekday with their
// metrics. A failing section read degrades to the default section.
func (s *ScheduleService) Today(ctx context.Context, now time.Time) (models.DaySchedule, error) {
	section, err := s.sections.GetSelectedSection(ctx)
	if err != nil {
		s.logger.Warn("using default section", zap.String("section", string(section)), zap.Error(err))
	}
	day := WeekdayOf(now)
	lectures, err := s.Day(section, day)
	if err != nil {
		return models.DaySchedule{}, err
	}
	return models.DaySchedule{
		Section:  section,
		Day:      day,
		Lectures: lectures,
		Metrics:  s.Metrics(section, lectures),
	}, nil
}

// Statuses returns today's lectures with their live status at now.
func (s *ScheduleService) Statuses(ctx context.Context, now time.Time) ([]models.LectureWithStatus, error) {
	day, err := s.Today(ctx, now)
	if err != nil {
		return nil, err
	}
	return s.StatusesAt(day.Lectures, now), nil
}

// StatusesAt computes statuses for lectures and records them.
func (s *ScheduleService) StatusesAt(lectures []models.Lecture, now time.Time) []models.LectureWithStatus {
	items := StatusesFor(lectures, now)
	if s.metrics != nil {
		for _, item := range items {
			if item.Status != nil {
				s.metrics.ObserveStatus(*item.Status)
			}
		}
	}
	return items
}

// Metrics summarises one day.
func (s *ScheduleService) Metrics(section models.SectionCode, lectures []models.Lecture) models.DayMetrics {
	labs := 0
	for _, l := range lectures {
		if l.Type == models.LectureTypeLab {
			labs++
		}
	}
	return models.DayMetrics{
		LecturesCount:  len(lectures) - labs,
		LabsCount:      labs,
		Intensity:      CalculateIntensity(lectures),
		TotalItems:     len(lectures),
		CurrentSection: section,
	}
}

// Weekly summarises the teaching week of a section.
func (s *ScheduleService) Weekly(section models.SectionCode) (models.WeeklyStats, error) {
	week, ok := s.timetable[section]
	if !ok {
		return models.WeeklyStats{}, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	stats := models.WeeklyStats{Section: section, Days: make([]models.DayLoad, 0, len(models.TeachingDays))}
	busiest := 0
	for _, day := range models.TeachingDays {
		lectures := week[day]
		hours := ContactHours(lectures)
		for _, l := range lectures {
			if l.Type == models.LectureTypeLab {
				stats.Labs++
			} else {
				stats.Lectures++
			}
		}
		if len(lectures) > busiest {
			busiest = len(lectures)
			stats.Busiest = day
		}
		stats.Days = append(stats.Days, models.DayLoad{
			Day:       day,
			Items:     len(lectures),
			Hours:     hours,
			Intensity: ClassifyHours(hours),
		})
	}
	stats.Total = stats.Lectures + stats.Labs
	return stats, nil
}

// FindLecture looks a lecture up by id anywhere in a section's week.
func (s *ScheduleService) FindLecture(section models.SectionCode, id string) (models.Lecture, models.Weekday, error) {
	week, ok := s.timetable[section]
	if !ok {
		return models.Lecture{}, "", appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	for day, lectures := range week {
		for _, l := range lectures {
			if l.ID == id {
				return l, day, nil
			}
		}
	}
	return models.Lecture{}, "", appErrors.Clone(appErrors.ErrNotFound, "lecture not found")
}

// SelectedSection exposes the section lookup used by Today.
func (s *ScheduleService) SelectedSection(ctx context.Context) models.SectionCode {
	section, err := s.sections.GetSelectedSection(ctx)
	if err != nil {
		s.logger.Warn("using default section", zap.String("section", string(section)), zap.Error(err))
	}
	return section
}
