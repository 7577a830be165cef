package invoiceRepo

import (
	"context"
	"log"

	"stitchdesk/database"
	"stitchdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InvoiceRepository is the persistence surface for invoices. NextSequence
// is the single authoritative allocator for shop-facing invoice numbers;
// it must never be replaced by a read-count-then-increment pattern, which
// hands out duplicates under concurrent writers.
type InvoiceRepository interface {
	Create(ctx context.Context, inv models.Invoice) error
	Update(ctx context.Context, inv models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetByHumanID(ctx context.Context, humanID string) (*models.Invoice, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Invoice, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
	DeleteByID(ctx context.Context, id string) error
	NextSequence(ctx context.Context) (int64, error)
}

type mongoInvoiceRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoInvoiceRepo returns a new InvoiceRepository instance using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoInvoiceRepo{
		coll:     db.Collection("invoices"),
		counters: db.Collection("counters"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("invoice repo: %v", err)
	}
	return repo
}
