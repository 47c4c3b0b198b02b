// File: services/assignment/assignment.go
package assignment

import (
	"context"
	"fmt"

	assignmentRepo "medicore/database/repository/assignment"
	userRepo "medicore/database/repository/user"
	"medicore/models"

	"github.com/google/uuid"
)

// AssignmentService manages doctor-patient links.
type AssignmentService interface {
	Assign(ctx context.Context, doctorID, patientID string) (*models.Assignment, error)
	Unassign(ctx context.Context, id string) error
	PatientsOfDoctor(ctx context.Context, doctorID string) ([]models.User, error)
	DoctorsOfPatient(ctx context.Context, patientID string) ([]models.User, error)
}

// DefaultAssignmentService is the production implementation.
type DefaultAssignmentService struct {
	Repo  assignmentRepo.AssignmentRepository
	Users userRepo.UserRepository
}

// Assign links a patient to a doctor after validating both roles.
func (s *DefaultAssignmentService) Assign(ctx context.Context, doctorID, patientID string) (*models.Assignment, error) {
	doctor, err := s.Users.GetByID(doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, fmt.Errorf("doctor %s not found", doctorID)
	}
	patient, err := s.Users.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != models.RolePatient {
		return nil, fmt.Errorf("patient %s not found", patientID)
	}

	a := &models.Assignment{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *DefaultAssignmentService) Unassign(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// PatientsOfDoctor resolves the assigned patients to full accounts.
func (s *DefaultAssignmentService) PatientsOfDoctor(ctx context.Context, doctorID string) ([]models.User, error) {
	assignments, err := s.Repo.GetByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return s.resolve(assignments, func(a models.Assignment) string { return a.PatientID })
}

// DoctorsOfPatient resolves the assigned doctors to full accounts.
func (s *DefaultAssignmentService) DoctorsOfPatient(ctx context.Context, patientID string) ([]models.User, error) {
	assignments, err := s.Repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.resolve(assignments, func(a models.Assignment) string { return a.DoctorID })
}

func (s *DefaultAssignmentService) resolve(assignments []models.Assignment, pick func(models.Assignment) string) ([]models.User, error) {
	users := make([]models.User, 0, len(assignments))
	for _, a := range assignments {
		usr, err := s.Users.GetByID(pick(a))
		if err != nil {
			return nil, err
		}
		if usr != nil {
			users = append(users, *usr)
		}
	}
	return users, nil
}
