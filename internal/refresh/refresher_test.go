package refresh

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/models"
)

func TestEveryEmitsImmediately(t *testing.T) {
	fixed := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	r := New(Config{Interval: time.Minute, Now: func() time.Time { return fixed }}, nil)
	r.Start()
	defer r.Stop()

	var got []time.Time
	sub, err := r.Every(func(now time.Time) { got = append(got, now) })
	require.NoError(t, err)
	defer sub.Stop()

	require.Len(t, got, 1)
	assert.Equal(t, fixed, got[0])
	assert.Equal(t, 1, r.Active())
}

func TestEveryTicks(t *testing.T) {
	r := New(Config{Interval: time.Second}, nil)
	r.Start()
	defer r.Stop()

	var calls int32
	sub, err := r.Every(func(time.Time) { atomic.AddInt32(&calls, 1) })
	require.NoError(t, err)
	defer sub.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 3*time.Second, 50*time.Millisecond)
}

func TestIntervalClamping(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "@every 1m0s",
		-time.Second:            "@every 1m0s",
		250 * time.Millisecond:  "@every 1s",
		time.Second:             "@every 1s",
		1500 * time.Millisecond: "@every 1s",
		30 * time.Second:        "@every 30s",
	}
	for interval, want := range cases {
		assert.Equal(t, want, New(Config{Interval: interval}, nil).spec, interval.String())
	}
}

func TestSubSecondIntervalTicksEverySecond(t *testing.T) {
	r := New(Config{Interval: 100 * time.Millisecond}, nil)
	r.Start()
	defer r.Stop()

	var calls int32
	sub, err := r.Every(func(time.Time) { atomic.AddInt32(&calls, 1) })
	require.NoError(t, err)
	defer sub.Stop()

	// One immediate call plus at least one tick well inside a minute.
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, 3*time.Second, 50*time.Millisecond)
}

func TestSubscriptionStop(t *testing.T) {
	var mu sync.Mutex
	counts := []int{}
	r := New(Config{Interval: time.Minute, OnChange: func(n int) {
		mu.Lock()
		counts = append(counts, n)
		mu.Unlock()
	}}, nil)
	r.Start()
	defer r.Stop()

	a, err := r.Every(func(time.Time) {})
	require.NoError(t, err)
	b, err := r.Every(func(time.Time) {})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Active())

	a.Stop()
	a.Stop()
	assert.Equal(t, 1, r.Active())
	b.Stop()
	assert.Equal(t, 0, r.Active())

	mu.Lock()
	assert.Equal(t, []int{1, 2, 1, 0}, counts)
	mu.Unlock()
}

func TestStopRejectsNewSubscriptions(t *testing.T) {
	r := New(Config{Interval: time.Minute}, nil)
	r.Start()
	_, err := r.Every(func(time.Time) {})
	require.NoError(t, err)

	r.Stop()
	r.Stop()
	assert.Equal(t, 0, r.Active())

	_, err = r.Every(func(time.Time) {})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestWatchComputesStatus(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	r := New(Config{Interval: time.Minute, Now: func() time.Time { return now }}, nil)
	r.Start()
	defer r.Stop()

	var got models.LectureWithStatus
	sub, err := r.Watch(models.Lecture{ID: "m1", Start: "09:00 AM", End: "10:00 AM"}, func(item models.LectureWithStatus) {
		got = item
	})
	require.NoError(t, err)
	defer sub.Stop()

	assert.Equal(t, "m1", got.ID)
	require.NotNil(t, got.Status)
	assert.True(t, got.Status.IsActive)
	assert.InDelta(t, 0.5, got.Status.Progress, 1e-9)
}
