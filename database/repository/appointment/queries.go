// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBookedIntervals returns the intervals that block new bookings for
// a doctor on a date: every appointment not in the cancelled state.
func (r *MongoAppointmentRepo) GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().
		SetProjection(bson.M{"start": 1, "end": 1}).
		SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked intervals for doctor %s on %s: %w", doctorID, date, err)
	}
	defer cursor.Close(ctx)

	var intervals []models.BookedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("failed to decode booked intervals: %w", err)
	}
	return intervals, nil
}

// GetByDoctor lists a doctor's appointments, newest date first.
func (r *MongoAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

// GetByPatient lists a patient's appointments, newest date first.
func (r *MongoAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *MongoAppointmentRepo) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// EnsureIndexes creates the indexes backing the conflict check and
// the per-party listings.
func (r *MongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
