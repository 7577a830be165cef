package customerRepo

import (
	"context"
	"errors"
	"time"

	"stitchdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new customer record and returns its ID.
func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

// Update replaces a stored customer record.
func (r *mongoCustomerRepo) Update(ctx context.Context, customer models.Customer) error {
	customer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": customer.ID}, customer)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("customer not found")
	}
	return nil
}

// GetByID returns a customer by ID.
func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetAll fetches every customer record.
func (r *mongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// DeleteByID removes a customer record by ID.
func (r *mongoCustomerRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("customer not found")
	}
	return nil
}
