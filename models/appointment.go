package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booked visit between a doctor and a patient.
// Start and End are minutes from midnight on Date; the interval is
// half-open, so an appointment ending at 600 does not collide with
// one starting at 600.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookedInterval is the slice of an appointment that blocks further
// bookings for its doctor and date.
type BookedInterval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// BookAppointmentRequest is the payload for booking a visit.
type BookAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    int    `json:"start" binding:"required"`
	Reason   string `json:"reason"`
}
