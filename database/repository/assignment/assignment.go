// File: database/repository/assignment/assignment.go
package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssignmentRepository stores doctor-patient links.
type AssignmentRepository interface {
	Create(ctx context.Context, a *models.Assignment) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, doctorID, patientID string) (bool, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Assignment, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Assignment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo constructs a new MongoDB AssignmentRepository.
func NewMongoAssignmentRepo() AssignmentRepository {
	return &mongoAssignmentRepo{
		coll: database.DB().Collection("assignments"),
	}
}

func (r *mongoAssignmentRepo) Create(ctx context.Context, a *models.Assignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	a.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("patient %s is already assigned to doctor %s", a.PatientID, a.DoctorID)
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *mongoAssignmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("assignment with id %s not found", id)
	}
	return nil
}

func (r *mongoAssignmentRepo) Exists(ctx context.Context, doctorID, patientID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"doctorId": doctorID, "patientId": patientID})
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}

func (r *mongoAssignmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Assignment, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoAssignmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Assignment, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAssignmentRepo) findMany(ctx context.Context, filter bson.M) ([]models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	return assignments, nil
}

func (r *mongoAssignmentRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "patientId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create assignment indexes: %w", err)
	}
	return nil
}
