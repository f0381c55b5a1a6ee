package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/models"
)

// Notifier delivers a due reminder.
type Notifier interface {
	Notify(ctx context.Context, reminder models.Reminder) error
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the reminder.
func (n *LogNotifier) Notify(_ context.Context, reminder models.Reminder) error {
	n.logger.Info("class reminder",
		zap.String("reminder_id", reminder.ID),
		zap.String("lecture_id", reminder.LectureID),
		zap.String("title", reminder.Title),
		zap.String("body", reminder.Body),
	)
	return nil
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes reminders as JSON on a pub/sub channel.
type RedisNotifier struct {
	client  redisPublisher
	channel string
}

// NewRedisNotifier constructs a RedisNotifier.
func NewRedisNotifier(client redisPublisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

// Notify publishes the reminder.
func (n *RedisNotifier) Notify(ctx context.Context, reminder models.Reminder) error {
	payload, err := json.Marshal(reminder)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, n.channel, payload).Err()
}
