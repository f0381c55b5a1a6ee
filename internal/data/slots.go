package data

import (
	"sort"
	"strings"

	"github.com/Abdullah-819/786Times/internal/models"
)

// Slots are the university's fixed teaching slots. The lunch hour has none.
var Slots = []models.SlotDefinition{
	{Label: "1st Slot", Start: "08:00 AM", End: "09:00 AM"},
	{Label: "2nd Slot", Start: "09:00 AM", End: "10:00 AM"},
	{Label: "3rd Slot", Start: "10:00 AM", End: "11:00 AM"},
	{Label: "4th Slot", Start: "11:00 AM", End: "12:00 PM"},
	{Label: "5th Slot", Start: "01:00 PM", End: "02:00 PM"},
}

// VenueCatalogue lists every venue used anywhere in timetable, sorted.
func VenueCatalogue(timetable models.Timetable) []string {
	seen := make(map[string]struct{})
	for _, week := range timetable {
		for _, lectures := range week {
			for _, l := range lectures {
				venue := strings.TrimSpace(l.Venue)
				if venue != "" {
					seen[venue] = struct{}{}
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for venue := range seen {
		out = append(out, venue)
	}
	sort.Strings(out)
	return out
}
