package models

import "time"

// Charge statuses.
const (
	ChargePending = "pending"
	ChargePaid    = "paid"
	ChargeVoid    = "void"
)

// Charge is a billing entry against a patient. Amounts are integer
// cents; no payment gateway is involved.
type Charge struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Description   string    `bson:"description" json:"description"`
	AmountCents   int64     `bson:"amountCents" json:"amountCents"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
