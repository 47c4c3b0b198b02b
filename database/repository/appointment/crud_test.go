// File: database/repository/appointment/crud_test.go
package appointmentRepo

import (
	"reflect"
	"testing"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestElapsedFilterCoversPastDatesAndTodaysEndedSlots(t *testing.T) {
	// 2026-03-02 14:30 local: 870 minutes into the day.
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.Local)

	got := elapsedFilter(now)

	want := bson.M{
		"status": models.AppointmentScheduled,
		"$or": []bson.M{
			{"date": bson.M{"$lt": "2026-03-02"}},
			{"date": "2026-03-02", "end": bson.M{"$lte": 870}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("elapsedFilter(%v) = %#v, want %#v", now, got, want)
	}
}

func TestElapsedFilterAtMidnightOnlyMatchesEarlierDates(t *testing.T) {
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	got := elapsedFilter(now)

	or, ok := got["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two $or branches, got %#v", got["$or"])
	}
	// The same-day branch can only match intervals ending at minute 0,
	// which no valid appointment has.
	if !reflect.DeepEqual(or[1], bson.M{"date": "2026-03-02", "end": bson.M{"$lte": 0}}) {
		t.Errorf("same-day branch = %#v", or[1])
	}
}
