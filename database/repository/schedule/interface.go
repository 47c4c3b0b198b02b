// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores each doctor's recurring weekly schedule.
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *models.WeeklySchedule) error
	GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklySchedule, error)
	DeleteByDoctorID(ctx context.Context, doctorID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}
