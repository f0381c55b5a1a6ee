package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

// LoadTimetableFile reads a YAML timetable keyed by section code and weekday.
func LoadTimetableFile(path string) (models.Timetable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timetable file: %w", err)
	}
	return ParseTimetable(raw)
}

// ParseTimetable decodes and validates a YAML timetable document.
func ParseTimetable(raw []byte) (models.Timetable, error) {
	var doc map[string]map[string][]models.Lecture
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode timetable: %w", err)
	}

	out := make(models.Timetable, len(doc))
	for section, days := range doc {
		week := make(models.WeekSchedule, len(days))
		for name, lectures := range days {
			day, ok := models.ParseWeekday(name)
			if !ok {
				return nil, fmt.Errorf("section %s: unknown weekday %q", section, name)
			}
			for i, l := range lectures {
				if err := validateLecture(l); err != nil {
					return nil, fmt.Errorf("section %s %s[%d]: %w", section, day, i, err)
				}
			}
			week[day] = lectures
		}
		out[models.SectionCode(section)] = week
	}
	return out, nil
}

// Merge overlays whole sections from override onto base.
func Merge(base, override models.Timetable) models.Timetable {
	out := clone(base)
	for section, week := range override {
		out[section] = week
	}
	return out
}

func validateLecture(l models.Lecture) error {
	if l.ID == "" {
		return fmt.Errorf("lecture id is required")
	}
	switch l.Type {
	case models.LectureTypeLecture, models.LectureTypeLab:
	default:
		return fmt.Errorf("lecture %s: unknown type %q", l.ID, l.Type)
	}
	start, err := timeofday.Hours(l.Start)
	if err != nil {
		return fmt.Errorf("lecture %s: %w", l.ID, err)
	}
	end, err := timeofday.Hours(l.End)
	if err != nil {
		return fmt.Errorf("lecture %s: %w", l.ID, err)
	}
	if start >= end {
		return fmt.Errorf("lecture %s: start %s is not before end %s", l.ID, l.Start, l.End)
	}
	return nil
}
