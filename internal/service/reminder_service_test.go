package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/jobs"
)

type notifierStub struct {
	delivered chan models.Reminder
	failures  int
	mu        sync.Mutex
}

func (n *notifierStub) Notify(ctx context.Context, reminder models.Reminder) error {
	n.mu.Lock()
	if n.failures > 0 {
		n.failures--
		n.mu.Unlock()
		return errors.New("push service unavailable")
	}
	n.mu.Unlock()
	n.delivered <- reminder
	return nil
}

type reminderObserverStub struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *reminderObserverStub) ObserveReminder(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *reminderObserverStub) has(outcome string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, got := range o.outcomes {
		if got == outcome {
			return true
		}
	}
	return false
}

func newReminderService(t *testing.T, store *kvStoreStub, notifier Notifier, observer reminderObserver) *ReminderService {
	t.Helper()
	svc := NewReminderService(store, notifier, ReminderConfig{
		Offset: ReminderOffset{Lead: 10 * time.Minute, Floor: 10 * time.Millisecond},
		Queue:  jobs.QueueConfig{MaxRetries: 2, RetryDelay: 5 * time.Millisecond},
	}, observer, nil)
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return svc
}

var dbLecture = models.Lecture{ID: "bse-m1", Title: "Database Systems", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "D8"}

func TestReminderServicePermissionDefaultsToDenied(t *testing.T) {
	svc := newReminderService(t, newKVStoreStub(), &notifierStub{}, nil)

	perm, err := svc.Permission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDenied, perm)

	_, err = svc.Schedule(context.Background(), dbLecture, models.Monday, at(8, 0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrPermissionDenied))
	assert.Empty(t, svc.Pending())
}

func TestReminderServiceDeliversWithRetries(t *testing.T) {
	store := newKVStoreStub()
	notifier := &notifierStub{delivered: make(chan models.Reminder, 1), failures: 1}
	observer := &reminderObserverStub{}
	svc := newReminderService(t, store, notifier, observer)
	ctx := context.Background()

	perm, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionGranted, perm)
	assert.Equal(t, "granted", store.values["@notification_permission"])

	reminder, err := svc.Schedule(ctx, dbLecture, models.Monday, at(8, 55, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, reminder.DelaySeconds)
	assert.Equal(t, "bse-m1", reminder.LectureID)
	assert.Contains(t, reminder.Body, "09:00 AM")
	assert.Contains(t, reminder.Body, "D8")

	select {
	case got := <-notifier.delivered:
		assert.Equal(t, reminder.ID, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder was not delivered")
	}
	assert.Empty(t, svc.Pending())
	assert.True(t, observer.has("scheduled"))
	assert.True(t, observer.has(jobs.OutcomeRetried))
}

func TestReminderServiceSchedulesAhead(t *testing.T) {
	svc := newReminderService(t, newKVStoreStub(), &notifierStub{}, nil)
	ctx := context.Background()
	_, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)

	now := at(8, 0, 0)
	reminder, err := svc.Schedule(ctx, dbLecture, models.Monday, now)
	require.NoError(t, err)
	assert.Equal(t, 50*60, reminder.DelaySeconds)
	assert.Equal(t, now.Add(50*time.Minute), reminder.FireAt)

	replacement, err := svc.Schedule(ctx, dbLecture, models.Monday, now)
	require.NoError(t, err)
	pending := svc.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, replacement.ID, pending[0].ID)

	require.NoError(t, svc.Cancel(replacement.ID))
	assert.Empty(t, svc.Pending())
	assert.True(t, errors.Is(svc.Cancel(replacement.ID), appErrors.ErrNotFound))
}

func TestReminderServiceRevokingCancelsPending(t *testing.T) {
	svc := newReminderService(t, newKVStoreStub(), &notifierStub{}, nil)
	ctx := context.Background()
	_, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, dbLecture, models.Monday, at(7, 0, 0))
	require.NoError(t, err)

	perm, err := svc.SetPermission(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDenied, perm)
	assert.Empty(t, svc.Pending())
}

func TestReminderServiceInvalidStart(t *testing.T) {
	svc := newReminderService(t, newKVStoreStub(), &notifierStub{}, nil)
	ctx := context.Background()
	_, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)

	_, err = svc.Schedule(ctx, models.Lecture{ID: "x", Start: "soon"}, models.Monday, at(8, 0, 0))
	assert.True(t, errors.Is(err, appErrors.ErrInvalidTime))
}

func TestReminderServicePermissionReadFailure(t *testing.T) {
	store := newKVStoreStub()
	store.getErr = errors.New("offline")
	svc := newReminderService(t, store, &notifierStub{}, nil)

	perm, err := svc.Permission(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrStorage))
	assert.Equal(t, models.PermissionDenied, perm)

	_, err = svc.Schedule(context.Background(), dbLecture, models.Monday, at(8, 0, 0))
	assert.True(t, errors.Is(err, appErrors.ErrStorage))
}

func TestReminderServiceAnchorsToLectureWeekday(t *testing.T) {
	svc := newReminderService(t, newKVStoreStub(), &notifierStub{delivered: make(chan models.Reminder, 4)}, nil)
	ctx := context.Background()
	_, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)

	dld := models.Lecture{ID: "bse-w5", Title: "Digital Logic Design", Start: "01:00 PM", End: "02:00 PM"}
	now := at(9, 30, 0)
	reminder, err := svc.Schedule(ctx, dld, models.Wednesday, now)
	require.NoError(t, err)
	assert.Equal(t, models.Wednesday, reminder.Day)
	assert.Equal(t, time.Date(2025, time.March, 12, 12, 50, 0, 0, time.UTC), reminder.FireAt)
	assert.Equal(t, int((51*time.Hour+20*time.Minute)/time.Second), reminder.DelaySeconds)

	// Earlier today still uses the floor rather than jumping a week.
	today, err := svc.Schedule(ctx, dbLecture, models.Monday, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Millisecond), today.FireAt)

	implicit, err := svc.Schedule(ctx, models.Lecture{ID: "y", Start: "11:00 AM"}, "", now)
	require.NoError(t, err)
	assert.Equal(t, models.Monday, implicit.Day)
	assert.Equal(t, 80*60, implicit.DelaySeconds)

	_, err = svc.Schedule(ctx, dbLecture, models.Weekday("someday"), now)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestReminderServiceRevocationDuringSchedule(t *testing.T) {
	store := newKVStoreStub()
	svc := newReminderService(t, store, &notifierStub{}, nil)
	ctx := context.Background()
	_, err := svc.SetPermission(ctx, true)
	require.NoError(t, err)

	// The permission read sees "granted", then the user revokes before the
	// timer is armed.
	store.onGet = func() {
		_, revokeErr := svc.SetPermission(ctx, false)
		require.NoError(t, revokeErr)
	}
	_, err = svc.Schedule(ctx, dbLecture, models.Monday, at(7, 0, 0))
	assert.True(t, errors.Is(err, appErrors.ErrPermissionDenied))
	assert.Empty(t, svc.Pending())
}

func TestNextOccurrence(t *testing.T) {
	monday := at(9, 30, 0)
	got, ok := NextOccurrence(models.Monday, monday)
	require.True(t, ok)
	assert.Equal(t, monday, got)

	got, ok = NextOccurrence(models.Friday, monday)
	require.True(t, ok)
	assert.Equal(t, monday.AddDate(0, 0, 4), got)

	_, ok = NextOccurrence(models.Weekday("nope"), monday)
	assert.False(t, ok)
}
