package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/jobs"
)

const reminderJobType = "class_reminder"

type reminderObserver interface {
	ObserveReminder(outcome string)
}

// ReminderConfig configures reminder scheduling.
type ReminderConfig struct {
	Key    string
	Offset ReminderOffset
	Queue  jobs.QueueConfig
}

type scheduledReminder struct {
	reminder models.Reminder
	timer    *time.Timer
}

// ReminderService schedules "class starts soon" notifications. Each reminder
// owns a timer; when it fires the reminder is handed to a worker queue that
// calls the notifier with retries.
type ReminderService struct {
	store    KeyValueStore
	notifier Notifier
	cfg      ReminderConfig
	metrics  reminderObserver
	logger   *zap.Logger
	queue    *jobs.Queue
	newID    func() string

	mu      sync.Mutex
	pending map[string]*scheduledReminder
	// revoked counts permission revocations; Schedule compares it across
	// its permission read.
	revoked uint64
}

// NewReminderService constructs the service. Call Start before scheduling.
func NewReminderService(store KeyValueStore, notifier Notifier, cfg ReminderConfig, metrics reminderObserver, logger *zap.Logger) *ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	if cfg.Key == "" {
		cfg.Key = "@notification_permission"
	}
	if cfg.Offset == (ReminderOffset{}) {
		cfg.Offset = DefaultReminderOffset
	}
	s := &ReminderService{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		newID:    uuid.NewString,
		pending:  make(map[string]*scheduledReminder),
	}
	queueCfg := cfg.Queue
	if queueCfg.Logger == nil {
		queueCfg.Logger = logger
	}
	queueCfg.Observer = func(_ jobs.Job, outcome string) { s.observe(outcome) }
	s.queue = jobs.NewQueue("reminders", s.deliver, queueCfg)
	return s
}

// Start launches the delivery workers.
func (s *ReminderService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop cancels every pending timer and shuts the workers down.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	for id, entry := range s.pending {
		entry.timer.Stop()
		delete(s.pending, id)
	}
	s.mu.Unlock()
	s.queue.Stop()
}

// Permission returns the stored grant. Nothing stored means denied.
func (s *ReminderService) Permission(ctx context.Context) (models.NotificationPermission, error) {
	raw, err := s.store.Get(ctx, s.cfg.Key)
	if err != nil {
		if isKeyNotFound(err) {
			return models.PermissionDenied, nil
		}
		return models.PermissionDenied, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to read notification permission")
	}
	if models.NotificationPermission(raw) == models.PermissionGranted {
		return models.PermissionGranted, nil
	}
	return models.PermissionDenied, nil
}

// SetPermission stores the grant. Revoking it cancels pending reminders.
func (s *ReminderService) SetPermission(ctx context.Context, granted bool) (models.NotificationPermission, error) {
	value := models.PermissionDenied
	if granted {
		value = models.PermissionGranted
	}
	if err := s.store.Set(ctx, s.cfg.Key, string(value)); err != nil {
		return models.PermissionDenied, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to save notification permission")
	}
	if !granted {
		s.cancelAll()
	}
	return value, nil
}

// Schedule arms a reminder for lecture held on day, relative to now. The
// class is anchored to the next date falling on day, today included; an
// empty day means today. A second reminder for the same lecture replaces
// the first.
func (s *ReminderService) Schedule(ctx context.Context, lecture models.Lecture, day models.Weekday, now time.Time) (*models.Reminder, error) {
	s.mu.Lock()
	generation := s.revoked
	s.mu.Unlock()

	permission, err := s.Permission(ctx)
	if err != nil {
		return nil, err
	}
	if permission != models.PermissionGranted {
		s.observe("denied")
		return nil, appErrors.Clone(appErrors.ErrPermissionDenied, "")
	}

	classDay := now
	if day == "" {
		day = WeekdayOf(now)
	} else {
		var ok bool
		if classDay, ok = NextOccurrence(day, now); !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown day "+string(day))
		}
	}

	delay, err := s.cfg.Offset.DelayOn(lecture.Start, classDay, now)
	if err != nil {
		return nil, err
	}

	reminder := models.Reminder{
		ID:           s.newID(),
		LectureID:    lecture.ID,
		Day:          day,
		Title:        fmt.Sprintf("Upcoming: %s", lecture.Title),
		Body:         reminderBody(lecture),
		DelaySeconds: int(delay / time.Second),
		FireAt:       now.Add(delay),
	}

	s.mu.Lock()
	if s.revoked != generation {
		s.mu.Unlock()
		s.observe("denied")
		return nil, appErrors.Clone(appErrors.ErrPermissionDenied, "permission revoked while scheduling")
	}
	for id, entry := range s.pending {
		if entry.reminder.LectureID == lecture.ID {
			entry.timer.Stop()
			delete(s.pending, id)
		}
	}
	id := reminder.ID
	s.pending[id] = &scheduledReminder{
		reminder: reminder,
		timer:    time.AfterFunc(delay, func() { s.fire(id) }),
	}
	s.mu.Unlock()

	s.observe("scheduled")
	s.logger.Info("reminder scheduled",
		zap.String("reminder_id", reminder.ID),
		zap.String("lecture_id", lecture.ID),
		zap.String("day", string(day)),
		zap.Duration("delay", delay),
	)
	return &reminder, nil
}

// Cancel disarms a pending reminder.
func (s *ReminderService) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.pending[id]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "reminder not found")
	}
	entry.timer.Stop()
	delete(s.pending, id)
	return nil
}

// Pending lists armed reminders by fire time.
func (s *ReminderService) Pending() []models.Reminder {
	s.mu.Lock()
	out := make([]models.Reminder, 0, len(s.pending))
	for _, entry := range s.pending {
		out = append(out, entry.reminder)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

func (s *ReminderService) cancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked++
	for id, entry := range s.pending {
		entry.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *ReminderService) fire(id string) {
	s.mu.Lock()
	entry, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	job := jobs.Job{ID: id, Type: reminderJobType, Payload: entry.reminder}
	if err := s.queue.Enqueue(job); err != nil {
		s.observe(jobs.OutcomeDropped)
		s.logger.Error("failed to enqueue reminder", zap.String("reminder_id", id), zap.Error(err))
	}
}

func (s *ReminderService) deliver(ctx context.Context, job jobs.Job) error {
	reminder, ok := job.Payload.(models.Reminder)
	if !ok {
		return fmt.Errorf("unexpected payload %T for job %s", job.Payload, job.ID)
	}
	return s.notifier.Notify(ctx, reminder)
}

func (s *ReminderService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveReminder(outcome)
	}
}

func reminderBody(l models.Lecture) string {
	body := fmt.Sprintf("%s starts at %s", l.Title, l.Start)
	if l.Venue != "" {
		body += " in " + l.Venue
	}
	if l.Type == models.LectureTypeLab {
		body += " (lab)"
	}
	return body
}
