package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

func TestBuiltinTimetableIsValid(t *testing.T) {
	tt := DefaultTimetable()
	require.Len(t, tt, 3)
	ids := map[string]bool{}
	for section, week := range tt {
		for day, lectures := range week {
			for _, l := range lectures {
				require.NoError(t, validateLecture(l), "%s %s", section, day)
				key := string(section) + "/" + string(day) + "/" + l.ID
				assert.False(t, ids[key], "duplicate id %s", key)
				ids[key] = true
			}
		}
	}
	for _, s := range Sections {
		_, ok := tt[s.Code]
		assert.True(t, ok, "catalogue section %s missing from timetable", s.Code)
	}
}

func TestDefaultTimetableReturnsCopy(t *testing.T) {
	a := DefaultTimetable()
	a[models.SectionBSE][models.Monday][0].Title = "changed"
	b := DefaultTimetable()
	assert.Equal(t, "Database Systems", b[models.SectionBSE][models.Monday][0].Title)
}

func TestParseTimetable(t *testing.T) {
	doc := []byte(`
SP25-BSE-3-B:
  Monday:
    - id: x1
      title: Compilers
      type: lecture
      start: "08:00 AM"
      end: "09:30 AM"
      venue: D1
  fri: []
`)
	tt, err := ParseTimetable(doc)
	require.NoError(t, err)
	week := tt[models.SectionBSE]
	require.Len(t, week[models.Monday], 1)
	assert.Equal(t, "Compilers", week[models.Monday][0].Title)
	assert.Empty(t, week[models.Friday])
}

func TestParseTimetableRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"weekday":  "S:\n  funday: []\n",
		"order":    "S:\n  monday:\n    - {id: a, title: t, type: lab, start: \"10:00 AM\", end: \"09:00 AM\"}\n",
		"type":     "S:\n  monday:\n    - {id: a, title: t, type: seminar, start: \"09:00 AM\", end: \"10:00 AM\"}\n",
		"time":     "S:\n  monday:\n    - {id: a, title: t, type: lab, start: \"9 AM\", end: \"10:00 AM\"}\n",
		"noid":     "S:\n  monday:\n    - {title: t, type: lab, start: \"09:00 AM\", end: \"10:00 AM\"}\n",
		"notyaml:": "::: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTimetable([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTimetableFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("FA24-BCS-4-E:\n  monday: []\n"), 0o644))

	override, err := LoadTimetableFile(path)
	require.NoError(t, err)
	merged := Merge(DefaultTimetable(), override)
	assert.Empty(t, merged[models.SectionBCS][models.Monday])
	assert.NotEmpty(t, merged[models.SectionBSE][models.Monday])

	_, err = LoadTimetableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSlotsAreOrderedAndDisjoint(t *testing.T) {
	prevEnd := 0.0
	for _, slot := range Slots {
		start, err := timeofday.Hours(slot.Start)
		require.NoError(t, err, slot.Label)
		end, err := timeofday.Hours(slot.End)
		require.NoError(t, err, slot.Label)
		assert.Less(t, start, end, slot.Label)
		assert.GreaterOrEqual(t, start, prevEnd, slot.Label)
		prevEnd = end
	}
}

func TestEveryLectureSlotIsDefined(t *testing.T) {
	labels := map[string]bool{}
	for _, slot := range Slots {
		labels[slot.Label] = true
	}
	for section, week := range DefaultTimetable() {
		for day, lectures := range week {
			for _, l := range lectures {
				assert.True(t, labels[l.Slot], "%s %s %s: slot %q", section, day, l.ID, l.Slot)
			}
		}
	}
}

func TestVenueCatalogue(t *testing.T) {
	venues := VenueCatalogue(models.Timetable{
		"A": {models.Monday: {{ID: "1", Venue: "D8"}, {ID: "2", Venue: " C1 "}, {ID: "3"}}},
		"B": {models.Friday: {{ID: "4", Venue: "D8"}, {ID: "5", Venue: "B3"}}},
	})
	assert.Equal(t, []string{"B3", "C1", "D8"}, venues)

	assert.Contains(t, VenueCatalogue(DefaultTimetable()), "CLab-9")
	assert.Empty(t, VenueCatalogue(nil))
}
