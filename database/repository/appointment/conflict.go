// File: database/repository/appointment/conflict.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overlapFilter matches non-cancelled appointments for (doctorId, date)
// overlapping the half-open interval [start, end): an existing [a,b)
// conflicts iff a < end && start < b.
func overlapFilter(doctorID, date string, start, end int) bson.M {
	return bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$ne": models.AppointmentCancelled},
		"start":    bson.M{"$lt": end},
		"end":      bson.M{"$gt": start},
	}
}

// InsertIfNoConflict re-runs the overlap check and inserts the
// appointment inside a single MongoDB transaction, so two concurrent
// bookings for overlapping intervals cannot both commit.
func (r *MongoAppointmentRepo) InsertIfNoConflict(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(appt.DoctorID, appt.Date, appt.Start, appt.End))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotConflict
		}
		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
