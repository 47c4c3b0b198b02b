package models

import "time"

// Diagnosis is a doctor's clinical record for a patient, optionally
// tied to the appointment it was made during.
type Diagnosis struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	DoctorID      string    `bson:"doctorId" json:"doctorId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	Summary       string    `bson:"summary" json:"summary"`
	Details       string    `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
