// File: services/user/crud.go
package user

import (
	"context"
	"fmt"
	"time"

	"medicore/models"
	"medicore/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateUser applies the mutable profile fields.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phoneNumber"] = req.PhoneNumber
	}
	if req.DepartmentID != "" {
		updateDoc["departmentId"] = req.DepartmentID
	}
	if req.Specialty != "" {
		updateDoc["specialty"] = req.Specialty
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateDoc); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(req.ID)
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// DeleteUser removes an account. Deleting a doctor also drops their
// weekly schedule so availability lookups stop serving slots for them.
func (s *DefaultUserService) DeleteUser(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("user with id %s not found", userID)
	}

	if err := s.Repo.Delete(userID); err != nil {
		return err
	}

	if usr.Role == models.RoleDoctor && s.Schedules != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Schedules.DeleteByDoctorID(ctx, userID); err != nil {
			utils.GetLogger().Warn("failed to delete doctor schedule",
				zap.String("doctorID", userID), zap.Error(err))
		}
	}
	return nil
}

// GetAllUsers returns every account, admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetUsersByRole returns accounts holding one role.
func (s *DefaultUserService) GetUsersByRole(role string) ([]models.User, error) {
	return s.Repo.GetByRole(role)
}
