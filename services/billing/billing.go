// File: services/billing/billing.go
package billing

import (
	"context"
	"errors"
	"fmt"

	billingRepo "medicore/database/repository/billing"
	"medicore/models"

	"github.com/google/uuid"
)

// ErrBadTransition is returned for invalid charge status changes.
var ErrBadTransition = errors.New("invalid charge status transition")

// BillingService manages billing charges. Charges are plain records;
// no payment gateway is involved.
type BillingService interface {
	CreateCharge(ctx context.Context, c models.Charge) (*models.Charge, error)
	MarkPaid(ctx context.Context, id string) error
	Void(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.Charge, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Charge, error)
	ListAll(ctx context.Context) ([]models.Charge, error)
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Repo billingRepo.ChargeRepository
}

func (s *DefaultBillingService) CreateCharge(ctx context.Context, c models.Charge) (*models.Charge, error) {
	if c.PatientID == "" || c.Description == "" {
		return nil, fmt.Errorf("patient id and description are required")
	}
	if c.AmountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	c.ID = uuid.New().String()
	c.Status = models.ChargePending
	if err := s.Repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkPaid settles a pending charge.
func (s *DefaultBillingService) MarkPaid(ctx context.Context, id string) error {
	return s.transition(ctx, id, models.ChargePaid)
}

// Void cancels a pending charge.
func (s *DefaultBillingService) Void(ctx context.Context, id string) error {
	return s.transition(ctx, id, models.ChargeVoid)
}

func (s *DefaultBillingService) transition(ctx context.Context, id, to string) error {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("charge with id %s not found", id)
	}
	if c.Status != models.ChargePending {
		return ErrBadTransition
	}
	return s.Repo.UpdateStatus(ctx, id, to)
}

func (s *DefaultBillingService) Get(ctx context.Context, id string) (*models.Charge, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("charge with id %s not found", id)
	}
	return c, nil
}

func (s *DefaultBillingService) ListForPatient(ctx context.Context, patientID string) ([]models.Charge, error) {
	return s.Repo.GetByPatient(ctx, patientID)
}

func (s *DefaultBillingService) ListAll(ctx context.Context) ([]models.Charge, error) {
	return s.Repo.GetAll(ctx)
}
