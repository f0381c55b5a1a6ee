package models

// EventType classifies user-created academic events.
type EventType string

const (
	EventTypeMidterm    EventType = "midterm"
	EventTypeAssignment EventType = "assignment"
	EventTypeQuiz       EventType = "quiz"
	EventTypeOther      EventType = "other"
)

// Event is a user-created calendar entry. The whole list is persisted as a
// single JSON array.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Venue       string    `json:"venue,omitempty"`
	Description string    `json:"description,omitempty"`
	Type        EventType `json:"type"`
}
