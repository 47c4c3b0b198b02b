// File: services/diagnosis/diagnosis.go
package diagnosis

import (
	"context"
	"errors"
	"fmt"

	diagnosisRepo "medicore/database/repository/diagnosis"
	"medicore/models"

	"github.com/google/uuid"
)

// ErrForbidden is returned when the actor may not see or edit a record.
var ErrForbidden = errors.New("not allowed to access this diagnosis")

// DiagnosisService manages clinical records.
type DiagnosisService interface {
	Create(ctx context.Context, doctorID string, d models.Diagnosis) (*models.Diagnosis, error)
	Update(ctx context.Context, doctorID string, d models.Diagnosis) (*models.Diagnosis, error)
	Get(ctx context.Context, id, actorID, actorRole string) (*models.Diagnosis, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]models.Diagnosis, error)
}

// DefaultDiagnosisService is the production implementation.
type DefaultDiagnosisService struct {
	Repo diagnosisRepo.DiagnosisRepository
}

// Create records a new diagnosis authored by the given doctor.
func (s *DefaultDiagnosisService) Create(ctx context.Context, doctorID string, d models.Diagnosis) (*models.Diagnosis, error) {
	if d.PatientID == "" || d.Summary == "" {
		return nil, fmt.Errorf("patient id and summary are required")
	}
	d.ID = uuid.New().String()
	d.DoctorID = doctorID
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update lets the authoring doctor revise summary and details.
func (s *DefaultDiagnosisService) Update(ctx context.Context, doctorID string, d models.Diagnosis) (*models.Diagnosis, error) {
	existing, err := s.Repo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("diagnosis with id %s not found", d.ID)
	}
	if existing.DoctorID != doctorID {
		return nil, ErrForbidden
	}
	if d.Summary != "" {
		existing.Summary = d.Summary
	}
	if d.Details != "" {
		existing.Details = d.Details
	}
	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Get enforces read access: the patient, the authoring doctor, or an admin.
func (s *DefaultDiagnosisService) Get(ctx context.Context, id, actorID, actorRole string) (*models.Diagnosis, error) {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("diagnosis with id %s not found", id)
	}
	switch actorRole {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if d.DoctorID != actorID {
			return nil, ErrForbidden
		}
	case models.RolePatient:
		if d.PatientID != actorID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}
	return d, nil
}

func (s *DefaultDiagnosisService) ListForPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

func (s *DefaultDiagnosisService) ListForDoctor(ctx context.Context, doctorID string) ([]models.Diagnosis, error) {
	return s.Repo.GetByDoctor(ctx, doctorID)
}
