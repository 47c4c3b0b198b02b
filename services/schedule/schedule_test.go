// File: services/schedule/schedule_test.go
package schedule

import (
	"context"
	"testing"

	"medicore/models"
)

type fakeScheduleRepo struct {
	stored *models.WeeklySchedule
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, s *models.WeeklySchedule) error {
	f.stored = s
	return nil
}
func (f *fakeScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklySchedule, error) {
	return f.stored, nil
}
func (f *fakeScheduleRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error { return nil }
func (f *fakeScheduleRepo) EnsureIndexes(ctx context.Context) error                     { return nil }

func TestSetWeeklyScheduleConvertsClockTimes(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &DefaultScheduleService{Repo: repo}

	got, err := svc.SetWeeklySchedule(context.Background(), "doc-1", models.ScheduleUpdateRequest{
		Days: map[string]models.DayScheduleInput{
			"monday":  {Available: true, Start: "09:00", End: "17:00"},
			"tuesday": {Available: false},
		},
	})
	if err != nil {
		t.Fatalf("SetWeeklySchedule: %v", err)
	}

	mon := got.Days["monday"]
	if !mon.Available || mon.Start != 540 || mon.End != 1020 {
		t.Errorf("monday = %+v, want available 540-1020", mon)
	}
	if tue := got.Days["tuesday"]; tue.Available {
		t.Errorf("tuesday should be unavailable")
	}
	if repo.stored == nil || repo.stored.DoctorID != "doc-1" {
		t.Errorf("schedule was not stored for the doctor")
	}
}

func TestSetWeeklyScheduleRejectsUnknownDay(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &fakeScheduleRepo{}}

	_, err := svc.SetWeeklySchedule(context.Background(), "doc-1", models.ScheduleUpdateRequest{
		Days: map[string]models.DayScheduleInput{
			"funday": {Available: true, Start: "09:00", End: "17:00"},
		},
	})
	if err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestSetWeeklyScheduleRejectsInvertedWindow(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &fakeScheduleRepo{}}

	_, err := svc.SetWeeklySchedule(context.Background(), "doc-1", models.ScheduleUpdateRequest{
		Days: map[string]models.DayScheduleInput{
			"monday": {Available: true, Start: "17:00", End: "09:00"},
		},
	})
	if err == nil {
		t.Fatal("expected error for start after end")
	}
}

func TestGetWeeklyScheduleDefaultsToEmptyDays(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &fakeScheduleRepo{}}

	got, err := svc.GetWeeklySchedule(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetWeeklySchedule: %v", err)
	}
	if got == nil || got.Days == nil || len(got.Days) != 0 {
		t.Errorf("got %+v, want empty day map", got)
	}
}
