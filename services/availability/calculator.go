// File: services/availability/calculator.go
package availability

import (
	"time"

	"medicore/models"
	"medicore/utils"
)

// Reasons returned when a day yields no bookable slots.
const (
	ReasonDateInPast  = "date in past"
	ReasonUnavailable = "doctor not available on this day"
	ReasonFullyBooked = "fully booked"
)

// ComputeAvailableSlots derives the bookable windows for one doctor on
// one calendar date. It is a pure function of its inputs: the doctor's
// weekly schedule, the already-booked intervals for that date, the
// requested date, the current time and the slot length policy.
//
// All intervals are half-open [start, end) in minutes from midnight,
// so a booking ending exactly where a candidate starts does not block
// it (back-to-back bookings are allowed).
func ComputeAvailableSlots(
	schedule models.WeeklySchedule,
	booked []models.BookedInterval,
	date time.Time,
	now time.Time,
	slotMinutes int,
) models.AvailabilityResult {
	if slotMinutes <= 0 {
		return models.AvailabilityResult{Available: false, Slots: []models.AvailableSlot{}, Reason: ReasonUnavailable}
	}

	// No past-dated bookings. Whole dates only: a later time today is
	// still bookable.
	if utils.Midnight(date).Before(utils.Midnight(now)) {
		return models.AvailabilityResult{Available: false, Slots: []models.AvailableSlot{}, Reason: ReasonDateInPast}
	}

	day, ok := schedule.DayFor(date.Weekday())
	if !ok || !day.Available || day.Start >= day.End {
		return models.AvailabilityResult{Available: false, Slots: []models.AvailableSlot{}, Reason: ReasonUnavailable}
	}

	dateStr := date.Format(utils.DateLayout)

	// Candidate grid starts exactly at the configured start time, no
	// wall-clock alignment: a 09:15 start yields 09:15, 09:45, ...
	// A trailing partial slot past the end of the window is dropped.
	slots := []models.AvailableSlot{}
	for start := day.Start; start+slotMinutes <= day.End; start += slotMinutes {
		end := start + slotMinutes
		if !overlapsAny(start, end, booked) {
			slots = append(slots, models.AvailableSlot{Start: start, End: end, Date: dateStr})
		}
	}

	if len(slots) == 0 {
		return models.AvailabilityResult{Available: false, Slots: slots, Reason: ReasonFullyBooked}
	}
	return models.AvailabilityResult{Available: true, Slots: slots}
}

// overlapsAny reports whether [start, end) overlaps any booked
// interval: [a,b) and [c,d) overlap iff a < d && c < b.
func overlapsAny(start, end int, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if start < b.End && b.Start < end {
			return true
		}
	}
	return false
}
