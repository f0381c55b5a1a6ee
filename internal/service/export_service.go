package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/export"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

// Export formats understood by ExportService.Timetable.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
	FormatICS = "ics"
)

var timetableHeaders = []string{"Day", "Start", "End", "Title", "Type", "Venue", "Teacher", "Slot"}

var rruleWeekdays = map[models.Weekday]rrule.Weekday{
	models.Monday:    rrule.MO,
	models.Tuesday:   rrule.TU,
	models.Wednesday: rrule.WE,
	models.Thursday:  rrule.TH,
	models.Friday:    rrule.FR,
	models.Saturday:  rrule.SA,
	models.Sunday:    rrule.SU,
}

type timetableSource interface {
	Day(section models.SectionCode, day models.Weekday) ([]models.Lecture, error)
}

type eventSource interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

type icsRenderer interface {
	Render(entries []export.CalendarEntry) ([]byte, error)
}

// ExportConfig tunes calendar exports.
type ExportConfig struct {
	// Weeks bounds the recurrence of timetable entries.
	Weeks    int
	Location *time.Location
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the timetable and events for download.
type ExportService struct {
	schedule timetableSource
	events   eventSource
	csv      csvRenderer
	pdf      pdfRenderer
	ics      icsRenderer
	cfg      ExportConfig
	logger   *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers use the
// package defaults.
func NewExportService(schedule timetableSource, events eventSource, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer, ics icsRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Weeks <= 0 {
		cfg.Weeks = 16
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		p := export.NewPDFExporter()
		p.GroupBy = "Day"
		pdf = p
	}
	if ics == nil {
		ics = export.NewICSExporter("")
	}
	return &ExportService{schedule: schedule, events: events, csv: csv, pdf: pdf, ics: ics, cfg: cfg, logger: logger}
}

// Timetable renders a section's week in format.
func (s *ExportService) Timetable(section models.SectionCode, format string, from time.Time) (*ExportFile, error) {
	base := "timetable-" + strings.ToLower(string(section))
	switch strings.ToLower(format) {
	case "", FormatCSV:
		body, err := s.TimetableCSV(section)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Filename: base + ".csv", ContentType: "text/csv", Body: body}, nil
	case FormatPDF:
		body, err := s.TimetablePDF(section)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Body: body}, nil
	case FormatICS:
		body, err := s.TimetableICS(section, from)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Filename: base + ".ics", ContentType: "text/calendar", Body: body}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", format))
	}
}

// TimetableCSV renders the week as CSV.
func (s *ExportService) TimetableCSV(section models.SectionCode) ([]byte, error) {
	dataset, err := s.timetableDataset(section)
	if err != nil {
		return nil, err
	}
	body, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return body, nil
}

// TimetablePDF renders the week as a printable table.
func (s *ExportService) TimetablePDF(section models.SectionCode) ([]byte, error) {
	dataset, err := s.timetableDataset(section)
	if err != nil {
		return nil, err
	}
	body, err := s.pdf.Render(dataset, "Weekly Timetable", string(section))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return body, nil
}

// TimetableICS renders every lecture as a weekly recurring event whose first
// occurrence falls on or after from.
func (s *ExportService) TimetableICS(section models.SectionCode, from time.Time) ([]byte, error) {
	from = from.In(s.cfg.Location)
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, s.cfg.Location)

	var entries []export.CalendarEntry
	for _, day := range models.TeachingDays {
		lectures, err := s.schedule.Day(section, day)
		if err != nil {
			return nil, err
		}
		for _, l := range lectures {
			entry, err := s.recurringEntry(section, day, l, fromDay)
			if err != nil {
				s.logger.Warn("skipping lecture in calendar export", zap.String("lecture_id", l.ID), zap.Error(err))
				continue
			}
			entries = append(entries, entry)
		}
	}
	body, err := s.ics.Render(entries)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render calendar")
	}
	return body, nil
}

// EventsICS renders the user's events. Events without a time are all-day; a
// timed event lasts one hour.
func (s *ExportService) EventsICS(ctx context.Context) ([]byte, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]export.CalendarEntry, 0, len(events))
	for _, e := range events {
		day, ok := parseEventDate(e.Date)
		if !ok {
			s.logger.Warn("skipping undated event in calendar export", zap.String("event_id", e.ID))
			continue
		}
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.cfg.Location)
		entry := export.CalendarEntry{
			UID:         e.ID,
			Summary:     eventSummary(e),
			Location:    e.Venue,
			Description: e.Description,
			Start:       day,
			AllDay:      true,
		}
		if e.Time != "" {
			if at, err := timeofday.Parse(e.Time, day); err == nil {
				entry.Start = at
				entry.End = at.Add(time.Hour)
				entry.AllDay = false
			}
		}
		entries = append(entries, entry)
	}
	body, err := s.ics.Render(entries)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render calendar")
	}
	return body, nil
}

func (s *ExportService) recurringEntry(section models.SectionCode, day models.Weekday, l models.Lecture, fromDay time.Time) (export.CalendarEntry, error) {
	weekday, ok := rruleWeekdays[day]
	if !ok {
		return export.CalendarEntry{}, fmt.Errorf("unknown weekday %q", day)
	}
	startClock, err := timeofday.ParseClock(l.Start)
	if err != nil {
		return export.CalendarEntry{}, err
	}
	endClock, err := timeofday.ParseClock(l.End)
	if err != nil {
		return export.CalendarEntry{}, err
	}

	option := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Count:     s.cfg.Weeks,
		Byweekday: []rrule.Weekday{weekday},
		Dtstart:   startClock.On(fromDay),
	}
	rule, err := rrule.NewRRule(option)
	if err != nil {
		return export.CalendarEntry{}, err
	}
	first := rule.After(fromDay, true)
	if first.IsZero() {
		return export.CalendarEntry{}, fmt.Errorf("no occurrence after %s", fromDay.Format("2006-01-02"))
	}
	recurrence := rrule.ROption{Freq: rrule.WEEKLY, Count: s.cfg.Weeks, Byweekday: []rrule.Weekday{weekday}}

	return export.CalendarEntry{
		UID:         fmt.Sprintf("%s-%s@786times", strings.ToLower(string(section)), l.ID),
		Summary:     lectureSummary(l),
		Location:    l.Venue,
		Description: strings.TrimSpace(strings.Join([]string{l.Teacher, l.Slot}, " ")),
		Start:       first,
		End:         endClock.On(first),
		RRule:       recurrence.RRuleString(),
	}, nil
}

func (s *ExportService) timetableDataset(section models.SectionCode) (export.Dataset, error) {
	dataset := export.Dataset{Headers: timetableHeaders}
	for _, day := range models.TeachingDays {
		lectures, err := s.schedule.Day(section, day)
		if err != nil {
			return export.Dataset{}, err
		}
		for _, l := range lectures {
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Day":     titleCase(string(day)),
				"Start":   l.Start,
				"End":     l.End,
				"Title":   l.Title,
				"Type":    titleCase(string(l.Type)),
				"Venue":   l.Venue,
				"Teacher": l.Teacher,
				"Slot":    l.Slot,
			})
		}
	}
	return dataset, nil
}

func lectureSummary(l models.Lecture) string {
	if l.Type == models.LectureTypeLab {
		return l.Title + " (Lab)"
	}
	return l.Title
}

func eventSummary(e models.Event) string {
	if e.Type == "" {
		return e.Title
	}
	return fmt.Sprintf("[%s] %s", titleCase(string(e.Type)), e.Title)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
