package models

import "time"

// Assignment links a patient to their attending doctor.
type Assignment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
