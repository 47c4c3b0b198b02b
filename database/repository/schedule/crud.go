// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert overwrites a doctor's weekly schedule in one document.
// Schedules are only ever replaced whole, never patched per day.
func (r *mongoScheduleRepo) Upsert(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"doctorId": schedule.DoctorID}
	update := bson.M{"$set": schedule}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert schedule for doctor %s: %w", schedule.DoctorID, err)
	}
	return nil
}

// GetByDoctorID fetches a doctor's weekly schedule. Returns nil when
// the doctor has not configured one yet.
func (r *mongoScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklySchedule, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule for doctor %s: %w", doctorID, err)
	}
	return &schedule, nil
}

// DeleteByDoctorID removes a doctor's schedule, used when the doctor
// account itself is deleted.
func (r *mongoScheduleRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return fmt.Errorf("failed to delete schedule for doctor %s: %w", doctorID, err)
	}
	return nil
}

// EnsureIndexes creates the unique doctorId index.
func (r *mongoScheduleRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	return nil
}
