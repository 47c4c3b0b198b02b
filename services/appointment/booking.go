// File: services/appointment/booking.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/config"
	appointmentRepo "medicore/database/repository/appointment"
	"medicore/models"
	"medicore/services/availability"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book validates the requested slot against the doctor's schedule and
// then inserts it through the atomic conflict guard. The advisory slot
// list shown to the UI plays no part in correctness here: the repo
// re-checks the overlap rule at write time.
func (s *DefaultAppointmentService) Book(ctx context.Context, patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if utils.Midnight(date).Before(utils.Midnight(now)) {
		return nil, fmt.Errorf("cannot book an appointment in the past")
	}

	doctor, err := s.Users.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, fmt.Errorf("doctor %s not found", req.DoctorID)
	}

	slotMinutes := availability.SlotDuration()
	end := req.Start + slotMinutes
	if err := s.checkBookable(ctx, req.DoctorID, date, req.Start, end, slotMinutes); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      date.Format(utils.DateLayout),
		Start:     req.Start,
		End:       end,
		Status:    models.AppointmentScheduled,
		Reason:    req.Reason,
	}

	if err := s.Repo.InsertIfNoConflict(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.scheduleReminder(ctx, appt, doctor.Name, date)

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.Int("start", appt.Start))
	return appt, nil
}

// checkBookable verifies the interval lies inside the doctor's working
// window for that weekday and starts on the slot grid anchored at the
// day's configured start time.
func (s *DefaultAppointmentService) checkBookable(ctx context.Context, doctorID string, date time.Time, start, end, slotMinutes int) error {
	schedule, err := s.Schedules.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		return ErrNotBookable
	}
	day, ok := schedule.DayFor(date.Weekday())
	if !ok || !day.Available {
		return ErrNotBookable
	}
	if start < day.Start || end > day.End {
		return ErrNotBookable
	}
	if (start-day.Start)%slotMinutes != 0 {
		return ErrNotBookable
	}
	return nil
}

// Cancel transitions a scheduled appointment to cancelled. Patients
// may cancel their own bookings, doctors their own calendar entries,
// admins anything.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, actorID, actorRole string) error {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	if !mayModify(appt, actorID, actorRole) {
		return ErrForbidden
	}
	if appt.Status != models.AppointmentScheduled {
		return ErrBadTransition
	}
	return s.Repo.UpdateStatus(ctx, id, models.AppointmentCancelled)
}

// Complete transitions a scheduled appointment to completed and
// records the doctor's notes. Only the attending doctor may complete.
func (s *DefaultAppointmentService) Complete(ctx context.Context, id, doctorID, notes string) error {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appt == nil {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	if appt.DoctorID != doctorID {
		return ErrForbidden
	}
	if appt.Status != models.AppointmentScheduled {
		return ErrBadTransition
	}
	if notes != "" {
		if err := s.Repo.SetNotes(ctx, id, notes); err != nil {
			return err
		}
	}
	return s.Repo.UpdateStatus(ctx, id, models.AppointmentCompleted)
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("appointment with id %s not found", id)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(ctx, doctorID)
}

func (s *DefaultAppointmentService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

func mayModify(appt *models.Appointment, actorID, actorRole string) bool {
	switch actorRole {
	case models.RoleAdmin:
		return true
	case models.RoleDoctor:
		return appt.DoctorID == actorID
	case models.RolePatient:
		return appt.PatientID == actorID
	}
	return false
}

// scheduleReminder enqueues the patient reminder; a failure here never
// fails the booking.
func (s *DefaultAppointmentService) scheduleReminder(ctx context.Context, appt *models.Appointment, doctorName string, date time.Time) {
	if s.Reminders == nil {
		return
	}
	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}
	fireAt := date.Add(time.Duration(appt.Start) * time.Minute).Add(-lead)
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorName:    doctorName,
		Date:          appt.Date,
		Start:         appt.Start,
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
