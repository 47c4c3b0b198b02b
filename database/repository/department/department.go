// File: database/repository/department/department.go
package departmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *models.Department) error
	Update(ctx context.Context, dept *models.Department) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Department, error)
	GetAll(ctx context.Context) ([]models.Department, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoDepartmentRepo struct {
	coll *mongo.Collection
}

// NewMongoDepartmentRepo constructs a new MongoDB DepartmentRepository.
func NewMongoDepartmentRepo() DepartmentRepository {
	return &mongoDepartmentRepo{
		coll: database.DB().Collection("departments"),
	}
}

func (r *mongoDepartmentRepo) Create(ctx context.Context, dept *models.Department) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	dept.CreatedAt = now
	dept.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dept); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *mongoDepartmentRepo) Update(ctx context.Context, dept *models.Department) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dept.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": dept.ID}, bson.M{"$set": dept})
	if err != nil {
		return fmt.Errorf("failed to update department %s: %w", dept.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("department with id %s not found", dept.ID)
	}
	return nil
}

func (r *mongoDepartmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("department with id %s not found", id)
	}
	return nil
}

func (r *mongoDepartmentRepo) GetByID(ctx context.Context, id string) (*models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dept models.Department
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dept)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch department %s: %w", id, err)
	}
	return &dept, nil
}

func (r *mongoDepartmentRepo) GetAll(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer cursor.Close(ctx)

	var depts []models.Department
	if err := cursor.All(ctx, &depts); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	return depts, nil
}

func (r *mongoDepartmentRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create department indexes: %w", err)
	}
	return nil
}
