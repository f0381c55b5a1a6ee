package models

import "strings"

// SlotMode selects which venue list the explorer shows.
type SlotMode string

const (
	SlotModeFree   SlotMode = "free"
	SlotModeBooked SlotMode = "booked"
)

// ParseSlotMode accepts "free" or "booked" in any case.
func ParseSlotMode(raw string) (SlotMode, bool) {
	switch SlotMode(strings.ToLower(strings.TrimSpace(raw))) {
	case SlotModeFree:
		return SlotModeFree, true
	case SlotModeBooked:
		return SlotModeBooked, true
	}
	return "", false
}

// SlotDefinition is one fixed teaching slot of the day.
type SlotDefinition struct {
	Label string `json:"label" yaml:"label"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// SlotOccupancy splits the venue catalogue for one slot.
type SlotOccupancy struct {
	Slot   string   `json:"slot"`
	Time   string   `json:"time"`
	Free   []string `json:"free"`
	Booked []string `json:"booked"`
}

// SlotVenues is one slot filtered to a single mode.
type SlotVenues struct {
	Slot   string   `json:"slot"`
	Time   string   `json:"time"`
	Count  int      `json:"count"`
	Venues []string `json:"venues"`
}

// VenueDay is the explorer payload for one weekday.
type VenueDay struct {
	Day   Weekday      `json:"day"`
	Mode  SlotMode     `json:"mode"`
	Slots []SlotVenues `json:"slots"`
}
