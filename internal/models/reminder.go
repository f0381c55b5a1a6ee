package models

import "time"

// NotificationPermission is the stored grant state for reminders.
type NotificationPermission string

const (
	PermissionGranted NotificationPermission = "granted"
	PermissionDenied  NotificationPermission = "denied"
)

// Reminder is a scheduled "class starts soon" notification.
type Reminder struct {
	ID           string    `json:"id"`
	LectureID    string    `json:"lecture_id"`
	Day          Weekday   `json:"day"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	DelaySeconds int       `json:"delay_seconds"`
	FireAt       time.Time `json:"fire_at"`
}
