package customerRepo

import (
	"context"

	"stitchdesk/database"
	"stitchdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (string, error)
	Update(ctx context.Context, customer models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a new CustomerRepository instance using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCustomerRepo{
		coll: db.Collection("customers"),
	}
}
