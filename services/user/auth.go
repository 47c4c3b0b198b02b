// File: services/user/auth.go
package user

import (
	"context"
	"fmt"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// RegisterUser creates a doctor or patient account. Admin accounts
// cannot be minted through self-registration; see CreateUser.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationRequest) (*AuthResponse, error) {
	if req.Role != models.RoleDoctor && req.Role != models.RolePatient {
		return nil, fmt.Errorf("self-registration is limited to doctor and patient accounts")
	}
	return s.createAccount(req)
}

// CreateUser provisions an account with any role on behalf of an admin
// caller. The route registering it must enforce the admin role.
func (s *DefaultUserService) CreateUser(req models.AdminCreateUserRequest) (*AuthResponse, error) {
	return s.createAccount(models.UserRegistrationRequest{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		Specialty:    req.Specialty,
	})
}

// createAccount stores a new account with a bcrypt-hashed password and
// issues the first session token.
func (s *DefaultUserService) createAccount(req models.UserRegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		logger.Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}
	if req.Role == models.RoleDoctor && req.DepartmentID == "" {
		return nil, fmt.Errorf("doctors must be attached to a department")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		Specialty:    req.Specialty,
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email, Role: usr.Role}, nil
}

// AuthenticateUser verifies the password and rotates the session token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": usr.TokenHash}); err != nil {
		return nil, err
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email, Role: usr.Role}, nil
}

// RevokeAuthToken clears the stored token hash and evicts the auth
// cache entry so the session dies immediately.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("user with id %s not found", userID)
	}
	if usr.TokenHash != "" {
		evictAuthCache(usr.TokenHash)
	}
	return s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""})
}

// UpdateUserPassword verifies the current password, stores the new
// hash and revokes the active session.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr == nil {
		return fmt.Errorf("user with id %s not found", userID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if usr.TokenHash != "" {
		evictAuthCache(usr.TokenHash)
	}
	return s.Repo.UpdateSetDocument(userID, bson.M{"passwordHash": string(hash), "tokenHash": ""})
}

// issueToken mints a JWT for the user and records its hash on the model.
func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	usr.TokenHash = utils.HashToken(token)
	return token, nil
}

func evictAuthCache(tokenHash string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, "auth:"+tokenHash).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache entry", zap.Error(err))
	}
}
