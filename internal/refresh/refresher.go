// Package refresh recomputes lecture status on a fixed interval.
package refresh

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
	"github.com/Abdullah-819/786Times/internal/service"
)

// ErrStopped is returned when subscribing to a stopped Refresher.
var ErrStopped = errors.New("refresher stopped")

// Config tunes a Refresher.
type Config struct {
	// Interval between ticks. Zero means one minute; sub-second values are
	// raised to one second, the cron resolution.
	Interval time.Duration
	Now      func() time.Time
	// OnChange receives the number of live subscriptions after each change.
	OnChange func(active int)
}

// Refresher invokes subscribed callbacks once immediately and then on every
// tick until the subscription is stopped.
type Refresher struct {
	cron     *cron.Cron
	spec     string
	now      func() time.Time
	onChange func(int)
	logger   *zap.Logger

	mu      sync.Mutex
	started bool
	stopped bool
}

// New builds a Refresher. Call Start to begin ticking.
func New(cfg Config, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch {
	case cfg.Interval <= 0:
		cfg.Interval = time.Minute
	case cfg.Interval < time.Second:
		cfg.Interval = time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.OnChange == nil {
		cfg.OnChange = func(int) {}
	}
	cl := cronLogger{logger.Sugar()}
	return &Refresher{
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		spec:     fmt.Sprintf("@every %s", cfg.Interval.Truncate(time.Second)),
		now:      cfg.Now,
		onChange: cfg.OnChange,
		logger:   logger,
	}
}

// Start launches the scheduler goroutine.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped {
		return
	}
	r.cron.Start()
	r.started = true
	r.logger.Info("refresher started", zap.String("schedule", r.spec))
}

// Stop halts the scheduler, drops every subscription and waits for running
// callbacks to return.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	<-r.cron.Stop().Done()
	for _, entry := range r.cron.Entries() {
		r.cron.Remove(entry.ID)
	}
	r.onChange(0)
	r.logger.Info("refresher stopped")
}

// Active reports the number of live subscriptions.
func (r *Refresher) Active() int {
	return len(r.cron.Entries())
}

// Every calls fn with the current time now and on every tick.
func (r *Refresher) Every(fn func(now time.Time)) (*Subscription, error) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil, ErrStopped
	}
	id, err := r.cron.AddFunc(r.spec, func() { fn(r.now()) })
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	r.onChange(r.Active())
	fn(r.now())
	return &Subscription{refresher: r, id: id}, nil
}

// Watch emits the live status of lecture now and on every tick.
func (r *Refresher) Watch(lecture models.Lecture, fn func(models.LectureWithStatus)) (*Subscription, error) {
	return r.Every(func(now time.Time) {
		fn(service.StatusesFor([]models.Lecture{lecture}, now)[0])
	})
}

// Subscription is a handle on a scheduled callback.
type Subscription struct {
	refresher *Refresher
	id        cron.EntryID
	once      sync.Once
}

// Stop cancels the callback. It is safe to call more than once. A tick
// already in flight may still complete.
func (s *Subscription) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.refresher.cron.Remove(s.id)
		s.refresher.onChange(s.refresher.Active())
	})
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
