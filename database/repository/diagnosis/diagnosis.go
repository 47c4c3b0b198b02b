// File: database/repository/diagnosis/diagnosis.go
package diagnosisRepo

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

// DiagnosisRepository defines persistence operations for diagnoses.
type DiagnosisRepository interface {
	Create(ctx context.Context, d *models.Diagnosis) error
	Update(ctx context.Context, d *models.Diagnosis) error
	GetByID(ctx context.Context, id string) (*models.Diagnosis, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Diagnosis, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoDiagnosisRepo struct {
	coll *mongo.Collection
}

// NewMongoDiagnosisRepo constructs a new MongoDB DiagnosisRepository.
func NewMongoDiagnosisRepo() DiagnosisRepository {
	return &mongoDiagnosisRepo{
		coll: database.DB().Collection("diagnoses"),
	}
}

func (r *mongoDiagnosisRepo) Create(ctx context.Context, d *models.Diagnosis) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create diagnosis: %w", err)
	}
	return nil
}

func (r *mongoDiagnosisRepo) Update(ctx context.Context, d *models.Diagnosis) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": d.ID}, bson.M{"$set": d})
	if err != nil {
		return fmt.Errorf("failed to update diagnosis %s: %w", d.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("diagnosis with id %s not found", d.ID)
	}
	return nil
}

func (r *mongoDiagnosisRepo) GetByID(ctx context.Context, id string) (*models.Diagnosis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.Diagnosis
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch diagnosis %s: %w", id, err)
	}
	return &d, nil
}

func (r *mongoDiagnosisRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *mongoDiagnosisRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Diagnosis, error) {
	return r.findMany(ctx, bson.M{"doctorId": doctorID})
}

func (r *mongoDiagnosisRepo) findMany(ctx context.Context, filter bson.M) ([]models.Diagnosis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnoses: %w", err)
	}
	defer cursor.Close(ctx)

	var diagnoses []models.Diagnosis
	if err := cursor.All(ctx, &diagnoses); err != nil {
		return nil, fmt.Errorf("failed to decode diagnoses: %w", err)
	}
	return diagnoses, nil
}

func (r *mongoDiagnosisRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create diagnosis indexes: %w", err)
	}
	return nil
}
