// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"medicore/config"
	appointmentRepo "medicore/database/repository/appointment"
	scheduleRepo "medicore/database/repository/schedule"
	userRepo "medicore/database/repository/user"
	"medicore/models"
	"medicore/utils"

	"go.uber.org/zap"
)

// AvailabilityService exposes slot computation backed by the schedule
// and booking stores. The result is advisory; the write-time conflict
// check in the appointment repository is the real guard.
type AvailabilityService interface {
	GetDoctorAvailability(ctx context.Context, doctorID string, date time.Time) (models.AvailabilityResult, error)
	GetDepartmentAvailability(ctx context.Context, departmentID string, date time.Time) ([]models.DoctorAvailability, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
}

// SlotDuration returns the configured slot length in minutes.
func SlotDuration() int {
	if d := config.AppConfig.SlotDurationMinutes; d > 0 {
		return d
	}
	return 30
}

// GetDoctorAvailability loads the doctor's weekly schedule and the
// date's booked intervals and runs the calculator over the snapshot.
func (s *DefaultAvailabilityService) GetDoctorAvailability(ctx context.Context, doctorID string, date time.Time) (models.AvailabilityResult, error) {
	schedule, err := s.Schedules.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		// Doctor never configured a schedule; every day is unavailable.
		return models.AvailabilityResult{Available: false, Slots: []models.AvailableSlot{}, Reason: ReasonUnavailable}, nil
	}

	booked, err := s.Appointments.GetBookedIntervals(ctx, doctorID, date.Format(utils.DateLayout))
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load booked intervals: %w", err)
	}

	return ComputeAvailableSlots(*schedule, booked, date, time.Now(), SlotDuration()), nil
}

// GetDepartmentAvailability is the "any available doctor" variant: it
// evaluates every doctor in the department and returns the per-doctor
// results ordered by doctor ID.
func (s *DefaultAvailabilityService) GetDepartmentAvailability(ctx context.Context, departmentID string, date time.Time) ([]models.DoctorAvailability, error) {
	logger := utils.GetLogger()

	doctors, err := s.Users.GetDoctorsByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load department doctors: %w", err)
	}

	results := make([]models.DoctorAvailability, 0, len(doctors))
	for _, doc := range doctors {
		res, err := s.GetDoctorAvailability(ctx, doc.ID, date)
		if err != nil {
			logger.Error("GetDepartmentAvailability: skipping doctor",
				zap.String("doctorID", doc.ID), zap.Error(err))
			continue
		}
		results = append(results, models.DoctorAvailability{
			DoctorID:   doc.ID,
			DoctorName: doc.Name,
			Result:     res,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].DoctorID < results[j].DoctorID })
	return results, nil
}
