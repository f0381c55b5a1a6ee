package models

import "strings"

// LectureType distinguishes theory lectures from lab sessions.
type LectureType string

const (
	LectureTypeLecture LectureType = "lecture"
	LectureTypeLab     LectureType = "lab"
)

// Weekday keys the weekly timetable.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// TeachingDays lists the timetable days in display order.
var TeachingDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseWeekday normalises a day name such as "Monday" or "mon".
func ParseWeekday(raw string) (Weekday, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, d := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		if raw == string(d) || (len(raw) == 3 && strings.HasPrefix(string(d), raw)) {
			return d, true
		}
	}
	return "", false
}

// Lecture is a single entry in a section's static weekly timetable.
type Lecture struct {
	ID      string      `json:"id" yaml:"id"`
	Title   string      `json:"title" yaml:"title"`
	Type    LectureType `json:"type" yaml:"type"`
	Start   string      `json:"start" yaml:"start"`
	End     string      `json:"end" yaml:"end"`
	Venue   string      `json:"venue,omitempty" yaml:"venue"`
	Teacher string      `json:"teacher,omitempty" yaml:"teacher"`
	Slot    string      `json:"slot,omitempty" yaml:"slot"`
}

// WeekSchedule maps each weekday to its ordered lectures.
type WeekSchedule map[Weekday][]Lecture

// Timetable maps a section code to its week.
type Timetable map[SectionCode]WeekSchedule

// TimeStatus is the live state of a lecture relative to now.
type TimeStatus struct {
	Label          string  `json:"label"`
	Progress       float64 `json:"progress"`
	IsActive       bool    `json:"is_active"`
	IsUpcoming     bool    `json:"is_upcoming"`
	IsCompleted    bool    `json:"is_completed"`
	MinutesToStart *int    `json:"minutes_to_start,omitempty"`
}

// LectureWithStatus pairs a lecture with its computed status.
type LectureWithStatus struct {
	Lecture
	Status *TimeStatus `json:"status,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Intensity is the coarse workload tier of a day.
type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

// DayMetrics summarises one day for the dashboard.
type DayMetrics struct {
	LecturesCount  int         `json:"lectures_count"`
	LabsCount      int         `json:"labs_count"`
	Intensity      Intensity   `json:"intensity"`
	TotalItems     int         `json:"total_items"`
	CurrentSection SectionCode `json:"current_section"`
}

// DaySchedule is the dashboard payload for a single day.
type DaySchedule struct {
	Section  SectionCode `json:"section"`
	Day      Weekday     `json:"day"`
	Lectures []Lecture   `json:"lectures"`
	Metrics  DayMetrics  `json:"metrics"`
}
