package models

import (
	"strings"
	"time"
)

// DaySchedule is a doctor's working window for one weekday.
// Start and End are minutes from midnight; when Available is false
// they carry no meaning.
type DaySchedule struct {
	Available bool `bson:"available" json:"available"`
	Start     int  `bson:"start" json:"start"`
	End       int  `bson:"end" json:"end"`
}

// WeeklySchedule holds a doctor's recurring per-weekday working hours.
// Days is keyed by lowercase weekday name ("monday" .. "sunday"); a
// missing key is equivalent to an unavailable day.
type WeeklySchedule struct {
	DoctorID  string                 `bson:"doctorId" json:"doctorId"`
	Days      map[string]DaySchedule `bson:"days" json:"days"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// WeekdayKey converts a time.Weekday to the map key used by Days.
func WeekdayKey(w time.Weekday) string {
	return strings.ToLower(w.String())
}

// DayFor resolves the schedule entry for a weekday. The second return
// is false when no entry exists for that day.
func (s WeeklySchedule) DayFor(w time.Weekday) (DaySchedule, bool) {
	if s.Days == nil {
		return DaySchedule{}, false
	}
	day, ok := s.Days[WeekdayKey(w)]
	return day, ok
}

// DayScheduleInput is the wire form of one weekday entry, using
// "HH:MM" clock strings.
type DayScheduleInput struct {
	Available bool   `json:"available"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ScheduleUpdateRequest is the payload for replacing a doctor's
// weekly schedule.
type ScheduleUpdateRequest struct {
	Days map[string]DayScheduleInput `json:"days" binding:"required"`
}
