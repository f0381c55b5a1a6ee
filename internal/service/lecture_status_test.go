package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, sec, 0, time.UTC)
}

func exactlyOne(s models.TimeStatus) bool {
	n := 0
	for _, b := range []bool{s.IsActive, s.IsUpcoming, s.IsCompleted} {
		if b {
			n++
		}
	}
	return n == 1
}

func TestLectureStatusUpcoming(t *testing.T) {
	status, err := LectureStatus("09:00 AM", "10:00 AM", at(8, 59, 0))
	require.NoError(t, err)
	assert.True(t, status.IsUpcoming)
	assert.True(t, exactlyOne(status))
	require.NotNil(t, status.MinutesToStart)
	assert.Equal(t, 1, *status.MinutesToStart)
	assert.Equal(t, 0.0, status.Progress)
	assert.Equal(t, "Upcoming (1m)", status.Label)

	status, err = LectureStatus("09:00 AM", "10:00 AM", at(8, 58, 30))
	require.NoError(t, err)
	assert.Equal(t, 1, *status.MinutesToStart)
}

func TestLectureStatusActive(t *testing.T) {
	status, err := LectureStatus("09:00 AM", "10:00 AM", at(9, 30, 0))
	require.NoError(t, err)
	assert.True(t, status.IsActive)
	assert.True(t, exactlyOne(status))
	assert.InDelta(t, 0.5, status.Progress, 1e-9)
	assert.Nil(t, status.MinutesToStart)
	assert.Equal(t, "In Progress (30m left)", status.Label)

	status, err = LectureStatus("09:00 AM", "10:00 AM", at(9, 0, 0))
	require.NoError(t, err)
	assert.True(t, status.IsActive)
	assert.Equal(t, 0.0, status.Progress)
}

func TestLectureStatusCompleted(t *testing.T) {
	for name, now := range map[string]time.Time{
		"at end":    at(10, 0, 0),
		"after end": at(10, 1, 0),
		"evening":   at(22, 0, 0),
	} {
		t.Run(name, func(t *testing.T) {
			status, err := LectureStatus("09:00 AM", "10:00 AM", now)
			require.NoError(t, err)
			assert.True(t, status.IsCompleted)
			assert.True(t, exactlyOne(status))
			assert.Equal(t, 1.0, status.Progress)
			assert.Equal(t, "Completed", status.Label)
		})
	}
}

func TestLectureStatusZeroDuration(t *testing.T) {
	status, err := LectureStatus("09:00 AM", "09:00 AM", at(9, 0, 0))
	require.NoError(t, err)
	assert.True(t, status.IsCompleted)
}

func TestLectureStatusInvalidTime(t *testing.T) {
	_, err := LectureStatus("9am", "10:00 AM", at(9, 0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, timeofday.ErrInvalidTime))
	assert.True(t, errors.Is(err, appErrors.ErrInvalidTime))

	_, err = LectureStatus("09:00 AM", "", at(9, 0, 0))
	require.Error(t, err)
}

func TestStatusesForKeepsBrokenEntries(t *testing.T) {
	items := StatusesFor([]models.Lecture{
		{ID: "a", Start: "09:00 AM", End: "10:00 AM"},
		{ID: "b", Start: "bad", End: "10:00 AM"},
	}, at(9, 15, 0))
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Status)
	assert.True(t, items[0].Status.IsActive)
	assert.Nil(t, items[1].Status)
	assert.NotEmpty(t, items[1].Error)
}
