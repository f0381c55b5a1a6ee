package jobs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	done := make(chan Job, 1)
	q := NewQueue("test", func(ctx context.Context, job Job) error {
		done <- job
		return nil
	}, QueueConfig{})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "1", Type: "demo", Payload: "hello"}))

	select {
	case job := <-done:
		assert.Equal(t, "1", job.ID)
		assert.Equal(t, "hello", job.Payload)
		assert.False(t, job.Enqueued.IsZero())
	case <-time.After(time.Second):
		t.Fatal("job was not processed")
	}
}

func TestQueueRetriesThenDrops(t *testing.T) {
	var calls int32
	var mu sync.Mutex
	outcomes := []string{}
	dropped := make(chan struct{})

	q := NewQueue("retry", func(ctx context.Context, job Job) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	}, QueueConfig{
		MaxRetries: 2,
		RetryDelay: 5 * time.Millisecond,
		Observer: func(job Job, outcome string) {
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
			if outcome == OutcomeDropped {
				close(dropped)
			}
		},
	})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "x"}))

	select {
	case <-dropped:
	case <-time.After(time.Second):
		t.Fatal("job was not dropped")
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	mu.Lock()
	assert.Equal(t, []string{OutcomeRetried, OutcomeRetried, OutcomeDropped}, outcomes)
	mu.Unlock()
}

func TestQueueRejectsWhenNotRunning(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "a"}))

	q.Start(context.Background())
	q.Stop()
	assert.Error(t, q.Enqueue(Job{ID: "b"}))

	q.Start(context.Background())
	assert.Error(t, q.Enqueue(Job{ID: "c"}))
}
