// File: services/appointment/booking_test.go
package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	"medicore/models"
	"medicore/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	appts       map[string]*models.Appointment
	failWith    error
	insertCalls int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: map[string]*models.Appointment{}}
}

func (f *fakeAppointmentRepo) InsertIfNoConflict(ctx context.Context, appt *models.Appointment) error {
	f.insertCalls++
	if f.failWith != nil {
		return f.failWith
	}
	f.appts[appt.ID] = appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return f.appts[id], nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	appt, ok := f.appts[id]
	if !ok {
		return errors.New("not found")
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) SetNotes(ctx context.Context, id, notes string) error {
	appt, ok := f.appts[id]
	if !ok {
		return errors.New("not found")
	}
	appt.Notes = notes
	return nil
}

func (f *fakeAppointmentRepo) GetBookedIntervals(ctx context.Context, doctorID, date string) ([]models.BookedInterval, error) {
	var out []models.BookedInterval
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date && a.Status != models.AppointmentCancelled {
			out = append(out, models.BookedInterval{Start: a.Start, End: a.End})
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) CompleteElapsed(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeScheduleRepo serves one fixed weekly schedule.
type fakeScheduleRepo struct {
	schedule *models.WeeklySchedule
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, s *models.WeeklySchedule) error { return nil }
func (f *fakeScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklySchedule, error) {
	return f.schedule, nil
}
func (f *fakeScheduleRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error { return nil }
func (f *fakeScheduleRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeUserRepo serves a fixed set of accounts by ID.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) Update(u *models.User) error { return nil }
func (f *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByTokenHash(hash string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByRole(role string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetDoctorsByDepartment(departmentID string) ([]models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeReminderScheduler records scheduled reminders.
type fakeReminderScheduler struct {
	payloads []models.ReminderPayload
}

func (f *fakeReminderScheduler) ScheduleReminder(ctx context.Context, p models.ReminderPayload, fireAt time.Time) error {
	f.payloads = append(f.payloads, p)
	return nil
}

func allWeekSchedule(doctorID string, start, end int) *models.WeeklySchedule {
	days := make(map[string]models.DaySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[models.WeekdayKey(d)] = models.DaySchedule{Available: true, Start: start, End: end}
	}
	return &models.WeeklySchedule{DoctorID: doctorID, Days: days}
}

func newBookingFixture() (*DefaultAppointmentService, *fakeAppointmentRepo, *fakeReminderScheduler) {
	repo := newFakeAppointmentRepo()
	reminders := &fakeReminderScheduler{}
	svc := &DefaultAppointmentService{
		Repo:      repo,
		Schedules: &fakeScheduleRepo{schedule: allWeekSchedule("doc-1", 540, 1020)},
		Users: &fakeUserRepo{users: map[string]*models.User{
			"doc-1": {ID: "doc-1", Name: "Dr. Adams", Role: models.RoleDoctor},
			"pat-1": {ID: "pat-1", Name: "Pat", Role: models.RolePatient},
		}},
		Reminders: reminders,
	}
	return svc, repo, reminders
}

// nextWeek returns a date one week out so its weekday always has a
// schedule entry and the past-date guard never trips.
func nextWeek() string {
	return time.Now().AddDate(0, 0, 7).Format(utils.DateLayout)
}

func TestBookStoresScheduledAppointment(t *testing.T) {
	svc, repo, reminders := newBookingFixture()

	appt, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1",
		Date:     nextWeek(),
		Start:    540,
		Reason:   "check-up",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.Status != models.AppointmentScheduled {
		t.Errorf("status = %q, want %q", appt.Status, models.AppointmentScheduled)
	}
	if appt.End != 570 {
		t.Errorf("end = %d, want 570 (start + slot duration)", appt.End)
	}
	if repo.insertCalls != 1 {
		t.Errorf("insertCalls = %d, want 1", repo.insertCalls)
	}
	if len(reminders.payloads) != 1 || reminders.payloads[0].AppointmentID != appt.ID {
		t.Errorf("expected one reminder for %s, got %+v", appt.ID, reminders.payloads)
	}
}

func TestBookConflictMapsToErrSlotTaken(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.failWith = appointmentRepo.ErrSlotConflict

	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: nextWeek(), Start: 540,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("err = %v, want ErrSlotTaken", err)
	}
}

func TestBookRejectsOffGridStart(t *testing.T) {
	svc, repo, _ := newBookingFixture()

	// 550 is 10 minutes past the 09:00 anchor; not a grid slot.
	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: nextWeek(), Start: 550,
	})
	if !errors.Is(err, ErrNotBookable) {
		t.Fatalf("err = %v, want ErrNotBookable", err)
	}
	if repo.insertCalls != 0 {
		t.Errorf("insert attempted for unbookable slot")
	}
}

func TestBookRejectsSlotPastClosing(t *testing.T) {
	svc, _, _ := newBookingFixture()

	// 17:00 exactly: the slot would end at 17:30, past the 17:00 close.
	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1", Date: nextWeek(), Start: 1020,
	})
	if !errors.Is(err, ErrNotBookable) {
		t.Fatalf("err = %v, want ErrNotBookable", err)
	}
}

func TestBookRejectsPastDate(t *testing.T) {
	svc, repo, _ := newBookingFixture()

	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "doc-1",
		Date:     time.Now().AddDate(0, 0, -1).Format(utils.DateLayout),
		Start:    540,
	})
	if err == nil {
		t.Fatal("expected error for past date")
	}
	if repo.insertCalls != 0 {
		t.Errorf("insert attempted for past date")
	}
}

func TestBookRejectsUnknownDoctor(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "nobody", Date: nextWeek(), Start: 540,
	})
	if err == nil {
		t.Fatal("expected error for unknown doctor")
	}
}

func TestBookRejectsNonDoctorTarget(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.Book(context.Background(), "pat-1", models.BookAppointmentRequest{
		DoctorID: "pat-1", Date: nextWeek(), Start: 540,
	})
	if err == nil {
		t.Fatal("expected error when booking against a patient account")
	}
}

func TestCancelByOwner(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
		Status: models.AppointmentScheduled,
	}

	if err := svc.Cancel(context.Background(), "a1", "pat-1", models.RolePatient); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if got := repo.appts["a1"].Status; got != models.AppointmentCancelled {
		t.Errorf("status = %q, want cancelled", got)
	}
}

func TestCancelByStrangerForbidden(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
		Status: models.AppointmentScheduled,
	}

	err := svc.Cancel(context.Background(), "a1", "pat-2", models.RolePatient)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCancelCompletedIsBadTransition(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
		Status: models.AppointmentCompleted,
	}

	err := svc.Cancel(context.Background(), "a1", "pat-1", models.RolePatient)
	if !errors.Is(err, ErrBadTransition) {
		t.Fatalf("err = %v, want ErrBadTransition", err)
	}
}

func TestCompleteRecordsNotes(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
		Status: models.AppointmentScheduled,
	}

	if err := svc.Complete(context.Background(), "a1", "doc-1", "routine check"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got := repo.appts["a1"]; got.Status != models.AppointmentCompleted || got.Notes != "routine check" {
		t.Errorf("got status=%q notes=%q", got.Status, got.Notes)
	}
}

func TestCompleteByOtherDoctorForbidden(t *testing.T) {
	svc, repo, _ := newBookingFixture()
	repo.appts["a1"] = &models.Appointment{
		ID: "a1", DoctorID: "doc-1", PatientID: "pat-1",
		Status: models.AppointmentScheduled,
	}

	err := svc.Complete(context.Background(), "a1", "doc-2", "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}
