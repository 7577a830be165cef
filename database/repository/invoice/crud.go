package invoiceRepo

import (
	"context"
	"errors"

	"stitchdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a fully derived invoice record.
func (r *mongoInvoiceRepo) Create(ctx context.Context, inv models.Invoice) error {
	_, err := r.coll.InsertOne(ctx, inv)
	return err
}

// Update replaces the stored invoice document. Writes always carry the full
// record so derived fields can never be patched independently of their
// inputs.
func (r *mongoInvoiceRepo) Update(ctx context.Context, inv models.Invoice) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": inv.ID}, inv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

// GetByID returns an invoice by its storage key.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByHumanID returns an invoice by its shop-facing identifier (e.g. BILL1007).
func (r *mongoInvoiceRepo) GetByHumanID(ctx context.Context, humanID string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"humanId": humanID}).Decode(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByCustomerID fetches all invoices for one customer, newest first.
func (r *mongoInvoiceRepo) GetByCustomerID(ctx context.Context, customerID string) ([]models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetAll fetches every invoice, newest first.
func (r *mongoInvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// DeleteByID removes an invoice by storage key.
func (r *mongoInvoiceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
