// File: services/tasks/reminder.go
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicore/config"
	"medicore/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues appointment reminders for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler is the Redis-backed implementation.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler on the reminder queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder task to fire at the given time.
// Reminders whose fire time already passed are dropped silently.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	if fireAt.Before(time.Now()) {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
