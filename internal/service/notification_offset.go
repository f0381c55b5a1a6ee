package service

import (
	"time"

	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

// DefaultReminderOffset alerts ten minutes before class and fires almost
// immediately when that moment has already passed.
var DefaultReminderOffset = ReminderOffset{Lead: 10 * time.Minute, Floor: 5 * time.Second}

// ReminderOffset computes how long to wait before a class reminder.
type ReminderOffset struct {
	Lead  time.Duration
	Floor time.Duration
}

// Delay returns the wait until Lead before start, truncated to whole seconds.
// Once now is inside the lead window, or past the start, Floor is returned.
func (o ReminderOffset) Delay(startText string, now time.Time) (time.Duration, error) {
	return o.DelayOn(startText, now, now)
}

// DelayOn is Delay for a class held on the calendar day of classDay.
func (o ReminderOffset) DelayOn(startText string, classDay, now time.Time) (time.Duration, error) {
	start, err := timeofday.Parse(startText, classDay)
	if err != nil {
		return 0, invalidTime(err)
	}
	alertAt := start.Add(-o.Lead)
	if !now.Before(alertAt) {
		return o.Floor, nil
	}
	return alertAt.Sub(now).Truncate(time.Second), nil
}

// NotificationSeconds is the default offset in whole seconds.
func NotificationSeconds(startText string, now time.Time) (int, error) {
	d, err := DefaultReminderOffset.Delay(startText, now)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}
