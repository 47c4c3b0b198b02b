// File: services/appointment/interface.go
package appointment

import (
	"context"
	"errors"

	appointmentRepo "medicore/database/repository/appointment"
	scheduleRepo "medicore/database/repository/schedule"
	userRepo "medicore/database/repository/user"
	"medicore/models"
	"medicore/services/tasks"
)

var (
	// ErrSlotTaken maps the repository conflict onto the service layer.
	ErrSlotTaken = errors.New("the requested slot is no longer available")
	// ErrNotBookable is returned when the requested interval falls
	// outside the doctor's working hours or off the slot grid.
	ErrNotBookable = errors.New("the requested interval is not a bookable slot")
	// ErrForbidden is returned when the actor may not touch the appointment.
	ErrForbidden = errors.New("not allowed to modify this appointment")
	// ErrBadTransition is returned for invalid status transitions.
	ErrBadTransition = errors.New("invalid appointment status transition")
)

// AppointmentService defines business logic for the booking lifecycle.
type AppointmentService interface {
	Book(ctx context.Context, patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id, actorID, actorRole string) error
	Complete(ctx context.Context, id, doctorID, notes string) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Schedules scheduleRepo.ScheduleRepository
	Users     userRepo.UserRepository
	Reminders tasks.ReminderScheduler
}
