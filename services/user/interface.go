// File: services/user/interface.go
package user

import (
	scheduleRepo "medicore/database/repository/schedule"
	userRepo "medicore/database/repository/user"
	"medicore/models"
)

// UserService defines business logic for account operations.
type UserService interface {
	// RegisterUser validates self-registration details and creates the
	// account. Only doctor and patient roles may self-register.
	RegisterUser(req models.UserRegistrationRequest) (*AuthResponse, error)
	// CreateUser provisions an account with any role, including admin.
	// Callers must gate this behind admin authorization.
	CreateUser(req models.AdminCreateUserRequest) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns ID, role and token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// RevokeAuthToken clears the stored session token (logout).
	RevokeAuthToken(userID string) error
	// UpdateUserPassword verifies the current password and rotates it.
	UpdateUserPassword(userID, currentPassword, newPassword string) error

	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
	GetUsersByRole(role string) ([]models.User, error)
}

// DefaultUserService is the production implementation. Schedules is
// used to drop a doctor's weekly schedule when the account is deleted.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Schedules scheduleRepo.ScheduleRepository
}

// AuthResponse contains the account's ID, role and session token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
