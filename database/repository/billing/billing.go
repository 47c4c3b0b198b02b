// File: database/repository/billing/billing.go
package billingRepo

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

// ChargeRepository defines persistence operations for billing charges.
type ChargeRepository interface {
	Create(ctx context.Context, c *models.Charge) error
	UpdateStatus(ctx context.Context, id, status string) error
	GetByID(ctx context.Context, id string) (*models.Charge, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Charge, error)
	GetAll(ctx context.Context) ([]models.Charge, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoChargeRepo struct {
	coll *mongo.Collection
}

// NewMongoChargeRepo constructs a new MongoDB ChargeRepository.
func NewMongoChargeRepo() ChargeRepository {
	return &mongoChargeRepo{
		coll: database.DB().Collection("charges"),
	}
}

func (r *mongoChargeRepo) Create(ctx context.Context, c *models.Charge) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create charge: %w", err)
	}
	return nil
}

func (r *mongoChargeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update charge %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("charge with id %s not found", id)
	}
	return nil
}

func (r *mongoChargeRepo) GetByID(ctx context.Context, id string) (*models.Charge, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Charge
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch charge %s: %w", id, err)
	}
	return &c, nil
}

func (r *mongoChargeRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Charge, error) {
	return r.findMany(ctx, bson.M{"patientId": patientID})
}

func (r *mongoChargeRepo) GetAll(ctx context.Context) ([]models.Charge, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *mongoChargeRepo) findMany(ctx context.Context, filter bson.M) ([]models.Charge, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query charges: %w", err)
	}
	defer cursor.Close(ctx)

	var charges []models.Charge
	if err := cursor.All(ctx, &charges); err != nil {
		return nil, fmt.Errorf("failed to decode charges: %w", err)
	}
	return charges, nil
}

func (r *mongoChargeRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create charge indexes: %w", err)
	}
	return nil
}
