package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Day", "Start", "Title"},
		Rows: []map[string]string{
			{"Day": "Monday", "Start": "09:00 AM", "Title": "Database Systems"},
			{"Day": "Monday", "Start": "11:00 AM", "Title": "Networks, Lab"},
			{"Day": "Tuesday", "Start": "08:00 AM"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Day,Start,Title", lines[0])
	assert.Equal(t, `Monday,11:00 AM,"Networks, Lab"`, lines[2])
	assert.Equal(t, "Tuesday,08:00 AM,", lines[3])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()
	exporter.GroupBy = "Day"
	out, err := exporter.Render(sampleDataset(), "Weekly timetable", "SP25-BSE-3-B")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = exporter.Render(Dataset{}, "", "")
	assert.Error(t, err)
}

func TestICSExporterRender(t *testing.T) {
	loc := time.FixedZone("PKT", 5*3600)
	exporter := NewICSExporter("")
	exporter.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	out, err := exporter.Render([]CalendarEntry{
		{
			UID:      "bse-m1",
			Summary:  "Database Systems",
			Location: "D8",
			Start:    time.Date(2025, 3, 3, 9, 0, 0, 0, loc),
			End:      time.Date(2025, 3, 3, 10, 0, 0, 0, loc),
			RRule:    "FREQ=WEEKLY;COUNT=16;BYDAY=MO",
		},
		{
			UID:     "evt-1",
			Summary: "Midterm",
			Start:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
			AllDay:  true,
		},
	})
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(bytes.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	assert.Equal(t, "Database Systems", events[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "FREQ=WEEKLY;COUNT=16;BYDAY=MO", events[0].GetProperty(ical.ComponentPropertyRrule).Value)
	start, err := events[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 3, 3, 4, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Midterm", events[1].GetProperty(ical.ComponentPropertySummary).Value)
}

func TestICSExporterRejectsBadEntries(t *testing.T) {
	exporter := NewICSExporter("")
	_, err := exporter.Render([]CalendarEntry{{Summary: "no uid"}})
	assert.Error(t, err)

	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	_, err = exporter.Render([]CalendarEntry{{UID: "x", Start: at, End: at}})
	assert.Error(t, err)
}
