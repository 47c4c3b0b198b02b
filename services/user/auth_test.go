// File: services/user/auth_test.go
package user

import (
	"context"
	"testing"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	users   map[string]*models.User
	deleted []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(u *models.User) error {
	m.users[u.ID] = u
	return nil
}
func (m *memUserRepo) Update(u *models.User) error                   { return nil }
func (m *memUserRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }
func (m *memUserRepo) Delete(id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.users, id)
	return nil
}
func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	return m.users[id], nil
}
func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) GetByTokenHash(hash string) (*models.User, error) { return nil, nil }
func (m *memUserRepo) GetAll() ([]models.User, error)                   { return nil, nil }
func (m *memUserRepo) GetByRole(role string) ([]models.User, error)     { return nil, nil }
func (m *memUserRepo) GetDoctorsByDepartment(departmentID string) ([]models.User, error) {
	return nil, nil
}
func (m *memUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

// memScheduleRepo records schedule deletions.
type memScheduleRepo struct {
	deletedFor []string
}

func (m *memScheduleRepo) Upsert(ctx context.Context, s *models.WeeklySchedule) error { return nil }
func (m *memScheduleRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklySchedule, error) {
	return nil, nil
}
func (m *memScheduleRepo) DeleteByDoctorID(ctx context.Context, doctorID string) error {
	m.deletedFor = append(m.deletedFor, doctorID)
	return nil
}
func (m *memScheduleRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestRegisterUserRejectsAdminRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.RegisterUser(models.UserRegistrationRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	if err == nil {
		t.Fatal("expected self-registration with role admin to be rejected")
	}
}

func TestRegisterUserCreatesPatient(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterUser(models.UserRegistrationRequest{
		Name:     "Pat",
		Email:    "pat@example.com",
		Password: "supersecret",
		Role:     models.RolePatient,
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if resp.Token == "" || resp.Role != models.RolePatient {
		t.Errorf("resp = %+v, want token and patient role", resp)
	}

	stored := repo.users[resp.ID]
	if stored == nil {
		t.Fatal("account was not stored")
	}
	if stored.PasswordHash == "supersecret" || stored.PasswordHash == "" {
		t.Error("password was not hashed before storage")
	}
}

func TestCreateUserProvisionsAdmin(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.CreateUser(models.AdminCreateUserRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if repo.users[resp.ID] == nil || repo.users[resp.ID].Role != models.RoleAdmin {
		t.Errorf("admin account not stored: %+v", repo.users[resp.ID])
	}
}

func TestDeleteDoctorDropsSchedule(t *testing.T) {
	repo := newMemUserRepo()
	repo.users["doc-1"] = &models.User{ID: "doc-1", Role: models.RoleDoctor}
	schedules := &memScheduleRepo{}
	svc := &DefaultUserService{Repo: repo, Schedules: schedules}

	if err := svc.DeleteUser("doc-1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "doc-1" {
		t.Errorf("deleted accounts = %v, want [doc-1]", repo.deleted)
	}
	if len(schedules.deletedFor) != 1 || schedules.deletedFor[0] != "doc-1" {
		t.Errorf("deleted schedules = %v, want [doc-1]", schedules.deletedFor)
	}
}

func TestDeletePatientLeavesSchedulesAlone(t *testing.T) {
	repo := newMemUserRepo()
	repo.users["pat-1"] = &models.User{ID: "pat-1", Role: models.RolePatient}
	schedules := &memScheduleRepo{}
	svc := &DefaultUserService{Repo: repo, Schedules: schedules}

	if err := svc.DeleteUser("pat-1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(schedules.deletedFor) != 0 {
		t.Errorf("schedule deletion ran for a patient: %v", schedules.deletedFor)
	}
}
