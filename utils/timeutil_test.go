package utils

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"09:15", 555, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"garbage", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "09:00" {
		t.Errorf("FormatClock(540) = %q, want 09:00", got)
	}
	if got := FormatClock(615); got != "10:15" {
		t.Errorf("FormatClock(615) = %q, want 10:15", got)
	}
}

func TestParseDateWeekday(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("2026-03-02 weekday = %v, want Monday", d.Weekday())
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	if _, err := ParseDate("03/02/2026"); err == nil {
		t.Error("expected error for slash-formatted date")
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 2, 14, 45, 12, 999, time.Local)
	got := Midnight(in)
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", in, got, want)
	}
}
