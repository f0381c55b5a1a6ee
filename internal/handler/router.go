package handler

import "github.com/gin-gonic/gin"

// Handlers groups every API handler for route registration.
type Handlers struct {
	Sections  *SectionHandler
	Schedule  *ScheduleHandler
	Analytics *AnalyticsHandler
	Events    *EventHandler
	Export    *ExportHandler
	Intro     *IntroHandler
	Reminders *ReminderHandler
	Venues    *VenueHandler
}

// RegisterRoutes mounts the API under group.
func RegisterRoutes(group *gin.RouterGroup, h Handlers) {
	group.GET("/sections", h.Sections.List)
	group.GET("/section", h.Sections.Current)
	group.PUT("/section", h.Sections.Save)
	group.DELETE("/section", h.Sections.Clear)

	group.GET("/schedule/today", h.Schedule.Today)
	group.GET("/schedule/today/status", h.Schedule.Status)
	group.GET("/schedule/today/stream", h.Schedule.Stream)
	group.GET("/schedule/:section/:day", h.Schedule.Day)

	group.GET("/analytics/weekly", h.Analytics.Weekly)

	group.GET("/events", h.Events.List)
	group.POST("/events", h.Events.Create)
	group.GET("/events/export.ics", h.Events.ExportICS)
	group.DELETE("/events/:id", h.Events.Delete)

	group.GET("/timetable/export", h.Export.Timetable)

	group.GET("/venues/:day", h.Venues.Day)
	group.GET("/slot-mode", h.Venues.GetMode)
	group.PUT("/slot-mode", h.Venues.SaveMode)

	group.GET("/intro", h.Intro.Intro)
	group.GET("/quotes/random", h.Intro.Quote)
	group.GET("/dhikr/random", h.Intro.Dhikr)

	group.GET("/notifications/permission", h.Reminders.GetPermission)
	group.PUT("/notifications/permission", h.Reminders.SetPermission)
	group.POST("/reminders", h.Reminders.Schedule)
	group.GET("/reminders", h.Reminders.List)
	group.DELETE("/reminders/:id", h.Reminders.Cancel)
}
