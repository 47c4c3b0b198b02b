// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "medicore/database/repository/schedule"
	"medicore/models"
	"medicore/utils"
)

// ScheduleService manages doctors' weekly schedules.
type ScheduleService interface {
	SetWeeklySchedule(ctx context.Context, doctorID string, req models.ScheduleUpdateRequest) (*models.WeeklySchedule, error)
	GetWeeklySchedule(ctx context.Context, doctorID string) (*models.WeeklySchedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

var validDays = func() map[string]struct{} {
	m := make(map[string]struct{}, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		m[models.WeekdayKey(d)] = struct{}{}
	}
	return m
}()

// SetWeeklySchedule validates and stores the full weekly schedule,
// replacing whatever was there before.
func (s *DefaultScheduleService) SetWeeklySchedule(ctx context.Context, doctorID string, req models.ScheduleUpdateRequest) (*models.WeeklySchedule, error) {
	days := make(map[string]models.DaySchedule, len(req.Days))
	for name, in := range req.Days {
		if _, ok := validDays[name]; !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		if !in.Available {
			days[name] = models.DaySchedule{Available: false}
			continue
		}
		start, err := utils.ParseClock(in.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		end, err := utils.ParseClock(in.End)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if start >= end {
			return nil, fmt.Errorf("%s: start time must be before end time", name)
		}
		days[name] = models.DaySchedule{Available: true, Start: start, End: end}
	}

	schedule := &models.WeeklySchedule{DoctorID: doctorID, Days: days}
	if err := s.Repo.Upsert(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetWeeklySchedule fetches a doctor's schedule; an unset schedule
// comes back with an empty day map.
func (s *DefaultScheduleService) GetWeeklySchedule(ctx context.Context, doctorID string) (*models.WeeklySchedule, error) {
	schedule, err := s.Repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = &models.WeeklySchedule{DoctorID: doctorID, Days: map[string]models.DaySchedule{}}
	}
	return schedule, nil
}
