package models

// DayLoad is the load of a single weekday.
type DayLoad struct {
	Day       Weekday   `json:"day"`
	Items     int       `json:"items"`
	Hours     float64   `json:"hours"`
	Intensity Intensity `json:"intensity"`
}

// WeeklyStats is the semester insight summary for a section.
type WeeklyStats struct {
	Section  SectionCode `json:"section"`
	Lectures int         `json:"lectures"`
	Labs     int         `json:"labs"`
	Total    int         `json:"total"`
	Busiest  Weekday     `json:"busiest,omitempty"`
	Days     []DayLoad   `json:"days"`
}
