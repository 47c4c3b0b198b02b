// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotConflict is returned when the requested interval overlaps an
// existing non-cancelled appointment for the same doctor and date.
var ErrSlotConflict = errors.New("requested slot conflicts with an existing appointment")

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// InsertIfNoConflict atomically re-checks the overlap rule and
	// inserts the appointment. This is the authoritative conflict
	// guard; the advisory slot list never is.
	InsertIfNoConflict(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetNotes(ctx context.Context, id, notes string) error
	GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	CompleteElapsed(ctx context.Context, before time.Time) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoAppointmentRepo is the MongoDB implementation.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
