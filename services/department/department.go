// File: services/department/department.go
package department

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	departmentRepo "medicore/database/repository/department"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const listCacheKey = "departments:all"
const listCacheTTL = 10 * time.Minute

// DepartmentService defines business logic for hospital departments.
type DepartmentService interface {
	Create(ctx context.Context, name, description string) (*models.Department, error)
	Update(ctx context.Context, dept *models.Department) (*models.Department, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
}

// DefaultDepartmentService is the production implementation.
type DefaultDepartmentService struct {
	Repo departmentRepo.DepartmentRepository
}

func (s *DefaultDepartmentService) Create(ctx context.Context, name, description string) (*models.Department, error) {
	if name == "" {
		return nil, fmt.Errorf("department name is required")
	}
	dept := &models.Department{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.Repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return dept, nil
}

func (s *DefaultDepartmentService) Update(ctx context.Context, dept *models.Department) (*models.Department, error) {
	if dept.ID == "" {
		return nil, fmt.Errorf("department id is required")
	}
	if err := s.Repo.Update(ctx, dept); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return s.Repo.GetByID(ctx, dept.ID)
}

func (s *DefaultDepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *DefaultDepartmentService) GetByID(ctx context.Context, id string) (*models.Department, error) {
	dept, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, fmt.Errorf("department with id %s not found", id)
	}
	return dept, nil
}

// List serves the department list from the Redis cache when warm.
func (s *DefaultDepartmentService) List(ctx context.Context) ([]models.Department, error) {
	cache := utils.GetCacheClient()

	if raw, err := cache.Get(ctx, listCacheKey).Result(); err == nil {
		var depts []models.Department
		if err := json.Unmarshal([]byte(raw), &depts); err == nil {
			return depts, nil
		}
	}

	depts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(depts); err == nil {
		if err := cache.Set(ctx, listCacheKey, b, listCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache department list", zap.Error(err))
		}
	}
	return depts, nil
}

func (s *DefaultDepartmentService) invalidateListCache(ctx context.Context) {
	if err := utils.GetCacheClient().Del(ctx, listCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate department cache", zap.Error(err))
	}
}
