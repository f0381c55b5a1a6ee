package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// CalendarEntry is one VEVENT. AllDay entries use Start's date only. RRule,
// when set, is an RRULE value such as "FREQ=WEEKLY;BYDAY=MO".
type CalendarEntry struct {
	UID         string
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}

// ICSExporter renders entries as an iCalendar document.
type ICSExporter struct {
	ProductID string
	now       func() time.Time
}

// NewICSExporter constructs an exporter stamping events with the current time.
func NewICSExporter(productID string) *ICSExporter {
	if productID == "" {
		productID = "-//786Times//Timetable//EN"
	}
	return &ICSExporter{ProductID: productID, now: time.Now}
}

// Render serialises entries into a PUBLISH calendar.
func (e *ICSExporter) Render(entries []CalendarEntry) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(e.ProductID)

	stamp := e.now().UTC()
	for _, entry := range entries {
		if entry.UID == "" {
			return nil, fmt.Errorf("calendar entry %q has no uid", entry.Summary)
		}
		event := cal.AddEvent(entry.UID)
		event.SetDtStampTime(stamp)
		if entry.AllDay {
			event.SetAllDayStartAt(entry.Start)
			event.SetAllDayEndAt(entry.Start.AddDate(0, 0, 1))
		} else {
			if !entry.End.After(entry.Start) {
				return nil, fmt.Errorf("calendar entry %q ends before it starts", entry.UID)
			}
			event.SetStartAt(entry.Start)
			event.SetEndAt(entry.End)
		}
		event.SetSummary(entry.Summary)
		if entry.Location != "" {
			event.SetLocation(entry.Location)
		}
		if entry.Description != "" {
			event.SetDescription(entry.Description)
		}
		if entry.RRule != "" {
			event.SetProperty(ical.ComponentPropertyRrule, entry.RRule)
		}
	}
	return []byte(cal.Serialize()), nil
}
