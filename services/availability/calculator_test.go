package availability

import (
	"testing"
	"time"

	"medicore/models"
)

func mondaySchedule(start, end int) models.WeeklySchedule {
	return models.WeeklySchedule{
		DoctorID: "doc-1",
		Days: map[string]models.DaySchedule{
			"monday": {Available: true, Start: start, End: end},
		},
	}
}

var (
	// 2026-03-02 is a Monday.
	monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestComputeAvailableSlots_OpenDay(t *testing.T) {
	// 09:00-11:00, 30-minute slots, no bookings.
	res := ComputeAvailableSlots(mondaySchedule(540, 660), nil, monday, now, 30)

	if !res.Available {
		t.Fatalf("expected available, got reason %q", res.Reason)
	}
	want := [][2]int{{540, 570}, {570, 600}, {600, 630}, {630, 660}}
	if len(res.Slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(res.Slots))
	}
	for i, w := range want {
		if res.Slots[i].Start != w[0] || res.Slots[i].End != w[1] {
			t.Errorf("slot %d: expected [%d,%d), got [%d,%d)", i, w[0], w[1], res.Slots[i].Start, res.Slots[i].End)
		}
	}
}

func TestComputeAvailableSlots_BookedMiddle(t *testing.T) {
	// Same hours, one booking 09:30-10:00 removes exactly one slot.
	booked := []models.BookedInterval{{Start: 570, End: 600}}
	res := ComputeAvailableSlots(mondaySchedule(540, 660), booked, monday, now, 30)

	want := [][2]int{{540, 570}, {600, 630}, {630, 660}}
	if len(res.Slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(res.Slots))
	}
	for i, w := range want {
		if res.Slots[i].Start != w[0] || res.Slots[i].End != w[1] {
			t.Errorf("slot %d: expected [%d,%d), got [%d,%d)", i, w[0], w[1], res.Slots[i].Start, res.Slots[i].End)
		}
	}
}

func TestComputeAvailableSlots_DayOff(t *testing.T) {
	schedule := models.WeeklySchedule{
		DoctorID: "doc-1",
		Days: map[string]models.DaySchedule{
			"monday": {Available: false, Start: 540, End: 660},
		},
	}
	booked := []models.BookedInterval{{Start: 540, End: 570}}
	res := ComputeAvailableSlots(schedule, booked, monday, now, 30)

	if res.Available {
		t.Fatal("expected unavailable for a day off")
	}
	if res.Reason != ReasonUnavailable {
		t.Fatalf("expected reason %q, got %q", ReasonUnavailable, res.Reason)
	}
	if len(res.Slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(res.Slots))
	}
}

func TestComputeAvailableSlots_MissingDayEntry(t *testing.T) {
	// No entry at all for the weekday behaves like available:false.
	schedule := models.WeeklySchedule{
		DoctorID: "doc-1",
		Days: map[string]models.DaySchedule{
			"tuesday": {Available: true, Start: 540, End: 660},
		},
	}
	res := ComputeAvailableSlots(schedule, nil, monday, now, 30)

	if res.Available || res.Reason != ReasonUnavailable {
		t.Fatalf("expected %q, got available=%v reason=%q", ReasonUnavailable, res.Available, res.Reason)
	}
}

func TestComputeAvailableSlots_NoGridAlignment(t *testing.T) {
	// 09:15-10:15 produces 09:15 and 09:45, never a rounded 09:00.
	res := ComputeAvailableSlots(mondaySchedule(555, 615), nil, monday, now, 30)

	want := [][2]int{{555, 585}, {585, 615}}
	if len(res.Slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(res.Slots))
	}
	for i, w := range want {
		if res.Slots[i].Start != w[0] || res.Slots[i].End != w[1] {
			t.Errorf("slot %d: expected [%d,%d), got [%d,%d)", i, w[0], w[1], res.Slots[i].Start, res.Slots[i].End)
		}
	}
}

func TestComputeAvailableSlots_TrailingPartialDropped(t *testing.T) {
	// 09:00-10:45 with 30-minute slots: the 10:30-11:00 candidate
	// would overrun the window and is discarded.
	res := ComputeAvailableSlots(mondaySchedule(540, 645), nil, monday, now, 30)

	if len(res.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(res.Slots))
	}
	last := res.Slots[len(res.Slots)-1]
	if last.End != 630 {
		t.Fatalf("expected last slot to end at 630, got %d", last.End)
	}
}

func TestComputeAvailableSlots_FullyBooked(t *testing.T) {
	booked := []models.BookedInterval{{Start: 540, End: 660}}
	res := ComputeAvailableSlots(mondaySchedule(540, 660), booked, monday, now, 30)

	if res.Available {
		t.Fatal("expected unavailable when the whole window is booked")
	}
	if res.Reason != ReasonFullyBooked {
		t.Fatalf("expected reason %q, got %q", ReasonFullyBooked, res.Reason)
	}
}

func TestComputeAvailableSlots_PastDate(t *testing.T) {
	past := monday.AddDate(0, 0, -14)
	res := ComputeAvailableSlots(mondaySchedule(540, 660), nil, past, now, 30)

	if res.Available || res.Reason != ReasonDateInPast {
		t.Fatalf("expected %q, got available=%v reason=%q", ReasonDateInPast, res.Available, res.Reason)
	}
}

func TestComputeAvailableSlots_BackToBackAllowed(t *testing.T) {
	// A booking ending exactly at a candidate's start must not block
	// it, and one starting exactly at a candidate's end must not
	// block it either.
	booked := []models.BookedInterval{
		{Start: 510, End: 540}, // ends at 09:00
		{Start: 570, End: 600}, // starts at 09:30
	}
	res := ComputeAvailableSlots(mondaySchedule(540, 570), booked, monday, now, 30)

	if !res.Available || len(res.Slots) != 1 {
		t.Fatalf("expected the single 09:00-09:30 slot to survive, got %+v", res)
	}
	if res.Slots[0].Start != 540 || res.Slots[0].End != 570 {
		t.Fatalf("expected [540,570), got [%d,%d)", res.Slots[0].Start, res.Slots[0].End)
	}
}

func TestComputeAvailableSlots_NoOverlapProperty(t *testing.T) {
	booked := []models.BookedInterval{
		{Start: 555, End: 585},
		{Start: 600, End: 615},
		{Start: 645, End: 700},
	}
	sched := mondaySchedule(540, 720)
	res := ComputeAvailableSlots(sched, booked, monday, now, 30)

	day, _ := sched.DayFor(monday.Weekday())
	for _, s := range res.Slots {
		if s.Start < day.Start || s.End > day.End {
			t.Errorf("slot [%d,%d) escapes working hours [%d,%d)", s.Start, s.End, day.Start, day.End)
		}
		for _, b := range booked {
			if s.Start < b.End && b.Start < s.End {
				t.Errorf("slot [%d,%d) overlaps booking [%d,%d)", s.Start, s.End, b.Start, b.End)
			}
		}
	}
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	booked := []models.BookedInterval{{Start: 570, End: 600}}
	sched := mondaySchedule(540, 660)

	first := ComputeAvailableSlots(sched, booked, monday, now, 30)
	second := ComputeAvailableSlots(sched, booked, monday, now, 30)

	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("slot counts differ: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, first.Slots[i], second.Slots[i])
		}
	}
}

func TestComputeAvailableSlots_ChronologicalOrder(t *testing.T) {
	res := ComputeAvailableSlots(mondaySchedule(540, 720), nil, monday, now, 30)
	for i := 1; i < len(res.Slots); i++ {
		if res.Slots[i-1].Start >= res.Slots[i].Start {
			t.Fatalf("slots out of order at %d: %d >= %d", i, res.Slots[i-1].Start, res.Slots[i].Start)
		}
	}
}
