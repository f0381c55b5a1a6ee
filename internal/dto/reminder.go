package dto

import "github.com/Abdullah-819/786Times/internal/models"

// PermissionRequest grants or revokes notification permission.
type PermissionRequest struct {
	Granted *bool `json:"granted" binding:"required"`
}

// PermissionResponse reports the stored grant.
type PermissionResponse struct {
	Status models.NotificationPermission `json:"status"`
}

// ScheduleReminderRequest arms a reminder for a lecture of the selected
// section, or of Section when given.
type ScheduleReminderRequest struct {
	LectureID string `json:"lecture_id" binding:"required"`
	Section   string `json:"section"`
}
