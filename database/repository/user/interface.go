// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByRole(role string) ([]models.User, error)
	GetDoctorsByDepartment(departmentID string) ([]models.User, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoUserRepo is the MongoDB implementation of UserRepository.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
