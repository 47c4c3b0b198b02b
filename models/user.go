package models

import "time"

// Roles a MediCore account can hold.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User represents a platform account: admin, doctor or patient.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role         string    `bson:"role" json:"role"`
	DepartmentID string    `bson:"departmentId,omitempty" json:"departmentId,omitempty"` // doctors only
	Specialty    string    `bson:"specialty,omitempty" json:"specialty,omitempty"`       // doctors only
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationRequest is the payload for self-registering an
// account. Admin accounts cannot be minted through the public
// endpoint; they are provisioned by an existing admin or seeded.
type UserRegistrationRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role" binding:"required,oneof=doctor patient"`
	DepartmentID string `json:"departmentId"`
	Specialty    string `json:"specialty"`
}

// AdminCreateUserRequest is the payload for an admin provisioning an
// account of any role, including another admin.
type AdminCreateUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role" binding:"required,oneof=admin doctor patient"`
	DepartmentID string `json:"departmentId"`
	Specialty    string `json:"specialty"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	Specialty    string `json:"specialty,omitempty"`
}
