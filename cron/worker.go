// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicore/config"
	appointmentRepo "medicore/database/repository/appointment"
	userRepo "medicore/database/repository/user"
	"medicore/models"
	"medicore/services/notification"
	"medicore/services/tasks"
	"medicore/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the asynq worker in the background, consuming
// reminder tasks scheduled at booking time.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository, users userRepo.UserRepository, notifier notification.Notifier) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(appts, users, notifier))

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("Reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// handleReminderTask delivers one reminder. The appointment status is
// re-read first so reminders for appointments cancelled after
// scheduling are dropped without error.
func handleReminderTask(appts appointmentRepo.AppointmentRepository, users userRepo.UserRepository, notifier notification.Notifier) asynq.HandlerFunc {
	logger := utils.GetLogger()

	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			// A malformed payload will never parse; retrying is useless.
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		appt, err := appts.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return fmt.Errorf("failed to load appointment %s: %w", p.AppointmentID, err)
		}
		if appt == nil || appt.Status != models.AppointmentScheduled {
			logger.Info("Skipping reminder for non-scheduled appointment",
				zap.String("appointmentId", p.AppointmentID))
			return nil
		}

		patient, err := users.GetByID(p.PatientID)
		if err != nil {
			return fmt.Errorf("failed to load patient %s: %w", p.PatientID, err)
		}
		if patient == nil {
			logger.Warn("Reminder patient no longer exists", zap.String("patientId", p.PatientID))
			return nil
		}

		subject := fmt.Sprintf("Appointment reminder for %s", p.Date)
		body := fmt.Sprintf(
			"Hello %s,\r\n\r\nThis is a reminder of your appointment with %s on %s at %s.\r\n\r\nMediCore",
			patient.Name, p.DoctorName, p.Date, utils.FormatClock(p.Start),
		)

		if err := notifier.Send(patient.Email, subject, body); err != nil {
			logger.Error("Failed to send reminder email",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}

		logger.Info("Reminder sent",
			zap.String("appointmentId", p.AppointmentID), zap.String("patientId", p.PatientID))
		return nil
	}
}

// StartCompletionSweep periodically marks scheduled appointments whose
// date has fully elapsed as completed.
func StartCompletionSweep(appts appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := appts.CompleteElapsed(ctx, time.Now())
			cancel()
			if err != nil {
				logger.Error("Completion sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("Completion sweep marked elapsed appointments", zap.Int64("count", n))
			}
		}
	}()
}
