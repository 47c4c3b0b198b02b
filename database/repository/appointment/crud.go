// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID fetches one appointment.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateStatus transitions an appointment to the given status.
func (r *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// SetNotes records the doctor's visit notes.
func (r *MongoAppointmentRepo) SetNotes(ctx context.Context, id, notes string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"notes": notes, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set notes for appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// elapsedFilter matches scheduled appointments whose end has passed:
// any past date, or today's date with the interval end at or before
// the current minute.
func elapsedFilter(before time.Time) bson.M {
	today := before.Format("2006-01-02")
	nowMinutes := before.Hour()*60 + before.Minute()
	return bson.M{
		"status": models.AppointmentScheduled,
		"$or": []bson.M{
			{"date": bson.M{"$lt": today}},
			{"date": today, "end": bson.M{"$lte": nowMinutes}},
		},
	}
}

// CompleteElapsed marks scheduled appointments whose end has passed as
// completed. Used by the background sweep.
func (r *MongoAppointmentRepo) CompleteElapsed(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := elapsedFilter(before)
	update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete elapsed appointments: %w", err)
	}
	return result.ModifiedCount, nil
}
