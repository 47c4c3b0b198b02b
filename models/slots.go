package models

// AvailableSlot is a computed, non-persisted candidate booking window
// on a specific date. Start and End are minutes from midnight and the
// interval is half-open.
type AvailableSlot struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Date  string `json:"date"`
}

// AvailabilityResult is the outcome of a slot computation. Reason is
// set only when Available is false.
type AvailabilityResult struct {
	Available bool            `json:"available"`
	Slots     []AvailableSlot `json:"slots"`
	Reason    string          `json:"reason,omitempty"`
}

// DoctorAvailability pairs a doctor with their computed availability,
// used by the department-wide ("any doctor") lookup.
type DoctorAvailability struct {
	DoctorID   string             `json:"doctorId"`
	DoctorName string             `json:"doctorName,omitempty"`
	Result     AvailabilityResult `json:"result"`
}
