package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"`
	Start         int    `json:"start"`
}
