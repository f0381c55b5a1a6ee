package models

// SectionCode identifies an academic cohort, e.g. "SP25-BSE-3-B".
type SectionCode string

const (
	SectionBSE    SectionCode = "SP25-BSE-3-B"
	SectionBCS    SectionCode = "FA24-BCS-4-E"
	SectionBCSAlt SectionCode = "FA24-BCS-4-F"
)

// Section is a catalogue entry shown on the selection screen.
type Section struct {
	ID    string      `json:"id" yaml:"id"`
	Title string      `json:"title" yaml:"title"`
	Code  SectionCode `json:"code" yaml:"code"`
}
