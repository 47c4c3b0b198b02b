// File: cron/worker_test.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"medicore/models"
	"medicore/services/tasks"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// stubAppointmentRepo serves one appointment by ID.
type stubAppointmentRepo struct {
	appt *models.Appointment
}

func (s *stubAppointmentRepo) InsertIfNoConflict(ctx context.Context, a *models.Appointment) error {
	return nil
}
func (s *stubAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if s.appt != nil && s.appt.ID == id {
		return s.appt, nil
	}
	return nil, nil
}
func (s *stubAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (s *stubAppointmentRepo) SetNotes(ctx context.Context, id, notes string) error      { return nil }
func (s *stubAppointmentRepo) GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) CompleteElapsed(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}
func (s *stubAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

// stubUserRepo serves one account by ID.
type stubUserRepo struct {
	usr *models.User
}

func (s *stubUserRepo) Create(u *models.User) error                   { return nil }
func (s *stubUserRepo) Update(u *models.User) error                   { return nil }
func (s *stubUserRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (s *stubUserRepo) Delete(id string) error                        { return nil }
func (s *stubUserRepo) GetByID(id string) (*models.User, error) {
	if s.usr != nil && s.usr.ID == id {
		return s.usr, nil
	}
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error)    { return nil, nil }
func (s *stubUserRepo) GetByTokenHash(hash string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) GetAll() ([]models.User, error)                   { return nil, nil }
func (s *stubUserRepo) GetByRole(role string) ([]models.User, error)     { return nil, nil }
func (s *stubUserRepo) GetDoctorsByDepartment(departmentID string) ([]models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// recordingNotifier captures sent messages.
type recordingNotifier struct {
	to      []string
	subject []string
}

func (n *recordingNotifier) Send(to, subject, body string) error {
	n.to = append(n.to, to)
	n.subject = append(n.subject, subject)
	return nil
}

func reminderTask(t *testing.T, p models.ReminderPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return asynq.NewTask(tasks.TypeReminderSend, b)
}

func TestReminderSentForScheduledAppointment(t *testing.T) {
	appts := &stubAppointmentRepo{appt: &models.Appointment{
		ID: "a1", PatientID: "pat-1", Status: models.AppointmentScheduled,
	}}
	users := &stubUserRepo{usr: &models.User{ID: "pat-1", Name: "Pat", Email: "pat@example.com"}}
	notifier := &recordingNotifier{}

	handler := handleReminderTask(appts, users, notifier)
	task := reminderTask(t, models.ReminderPayload{
		AppointmentID: "a1", PatientID: "pat-1", DoctorName: "Dr. Adams",
		Date: "2026-03-02", Start: 540,
	})

	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.to) != 1 || notifier.to[0] != "pat@example.com" {
		t.Errorf("sent to %v, want [pat@example.com]", notifier.to)
	}
}

func TestReminderSkippedForCancelledAppointment(t *testing.T) {
	appts := &stubAppointmentRepo{appt: &models.Appointment{
		ID: "a1", PatientID: "pat-1", Status: models.AppointmentCancelled,
	}}
	notifier := &recordingNotifier{}

	handler := handleReminderTask(appts, &stubUserRepo{}, notifier)
	task := reminderTask(t, models.ReminderPayload{AppointmentID: "a1", PatientID: "pat-1"})

	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.to) != 0 {
		t.Errorf("notifier called for cancelled appointment: %v", notifier.to)
	}
}

func TestReminderSkippedForMissingAppointment(t *testing.T) {
	notifier := &recordingNotifier{}

	handler := handleReminderTask(&stubAppointmentRepo{}, &stubUserRepo{}, notifier)
	task := reminderTask(t, models.ReminderPayload{AppointmentID: "gone", PatientID: "pat-1"})

	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(notifier.to) != 0 {
		t.Errorf("notifier called for missing appointment: %v", notifier.to)
	}
}

func TestMalformedPayloadIsNotRetried(t *testing.T) {
	handler := handleReminderTask(&stubAppointmentRepo{}, &stubUserRepo{}, &recordingNotifier{})
	task := asynq.NewTask(tasks.TypeReminderSend, []byte("{not json"))

	err := handler(context.Background(), task)
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want asynq.SkipRetry so the task is dropped", err)
	}
}
