package invoiceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const invoiceCounterID = "invoice_sequence"

// NextSequence atomically allocates the next invoice sequence number using
// a findOneAndUpdate $inc on a dedicated counter document. The first
// allocation returns 0. Concurrent callers each receive a distinct number;
// the counter document is the single source of truth.
func (r *mongoInvoiceRepo) NextSequence(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": invoiceCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	// The stored counter is the count of allocated IDs; sequence numbers
	// are zero-indexed.
	return doc.Seq - 1, nil
}
