package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// EventConfig configures the event store.
type EventConfig struct {
	Key string
}

// CreateEventRequest is the payload for adding an event.
type CreateEventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,eventdate"`
	Time        string `json:"time" validate:"omitempty,clock"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"omitempty,oneof=midterm assignment quiz other"`
}

// EventService stores the user's events as one JSON array. Mutations are
// read-modify-write without locking; concurrent writers can lose updates.
type EventService struct {
	store     KeyValueStore
	cfg       EventConfig
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewEventService constructs the store.
func NewEventService(store KeyValueStore, cfg EventConfig, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Key == "" {
		cfg.Key = "@semester_events"
	}
	svc := &EventService{store: store, cfg: cfg, validator: validate, logger: logger, newID: uuid.NewString}
	_ = svc.validator.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
		_, ok := parseEventDate(fl.Field().String())
		return ok
	})
	_ = svc.validator.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := timeofday.ParseClock(fl.Field().String())
		return err == nil
	})
	return svc
}

// GetEvents returns the stored events. A missing key or an unreadable
// payload yields an empty list.
func (s *EventService) GetEvents(ctx context.Context) ([]models.Event, error) {
	raw, err := s.store.Get(ctx, s.cfg.Key)
	if err != nil {
		if isKeyNotFound(err) {
			return []models.Event{}, nil
		}
		s.logger.Warn("failed to read events", zap.Error(err))
		return []models.Event{}, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to read events")
	}
	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.logger.Warn("discarding malformed events payload", zap.Error(err))
		return []models.Event{}, nil
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// SaveEvents replaces the stored list.
func (s *EventService) SaveEvents(ctx context.Context, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode events")
	}
	if err := s.store.Set(ctx, s.cfg.Key, string(payload)); err != nil {
		s.logger.Warn("failed to save events", zap.Int("count", len(events)), zap.Error(err))
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to save events")
	}
	return nil
}

// AddEvent validates req, appends it and persists the list.
func (s *EventService) AddEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	event := models.Event{
		ID:          strings.TrimSpace(req.ID),
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       strings.TrimSpace(req.Venue),
		Description: strings.TrimSpace(req.Description),
		Type:        models.EventType(req.Type),
	}
	if event.ID == "" {
		event.ID = s.newID()
	}
	if event.Type == "" {
		event.Type = models.EventTypeMidterm
	}

	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	events = append(events, event)
	if err := s.SaveEvents(ctx, events); err != nil {
		return nil, err
	}
	s.logger.Info("event added", zap.String("id", event.ID), zap.String("type", string(event.Type)))
	return &event, nil
}

// DeleteEvent removes every event with id. Unknown ids leave the list as is.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return nil
	}
	return s.SaveEvents(ctx, kept)
}

// ListEvents returns the events ordered by date then time. Undated entries
// sort last in insertion order.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return events, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return eventInstant(events[i]).Before(eventInstant(events[j]))
	})
	return events, nil
}

func eventInstant(e models.Event) time.Time {
	day, ok := parseEventDate(e.Date)
	if !ok {
		return time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	}
	if e.Time != "" {
		if at, err := timeofday.Parse(e.Time, day); err == nil {
			return at
		}
	}
	return day
}

func parseEventDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
