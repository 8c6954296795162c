package repository

import (
	"context"
	"time"

	"sopdocs/internal/sop/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) CreateOperation(ctx context.Context, op *model.PendingOperation) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	if op.Status == "" {
		op.Status = model.StatusPending
	}
	if op.RequestedAt.IsZero() {
		op.RequestedAt = time.Now()
	}

	_, err := r.Operations.InsertOne(ctx, op)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindOperation(ctx context.Context, id string) (*model.PendingOperation, error) {
	var op model.PendingOperation
	err := r.Operations.FindOne(ctx, bson.M{"_id": id}).Decode(&op)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

func (r *MongoRepository) FindOperationsByStatus(ctx context.Context, status string) ([]*model.PendingOperation, error) {
	return r.findOperations(ctx, bson.M{"status": status})
}

func (r *MongoRepository) FindOperationsForApprover(ctx context.Context, status, approverID string) ([]*model.PendingOperation, error) {
	return r.findOperations(ctx, bson.M{
		"status":               status,
		"assigned_approver_id": approverID,
	})
}

func (r *MongoRepository) FindOperationsOlderThan(ctx context.Context, status string, cutoff time.Time) ([]*model.PendingOperation, error) {
	return r.findOperations(ctx, bson.M{
		"status":       status,
		"requested_at": bson.M{"$lt": cutoff},
	})
}

func (r *MongoRepository) findOperations(ctx context.Context, query bson.M) ([]*model.PendingOperation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: 1}})
	cursor, err := r.Operations.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ops []*model.PendingOperation
	if err := cursor.All(ctx, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// MarkReviewed is the single atomic read-modify-write of the decide path.
// The filter is guarded by status=PENDING so concurrent decisions on the
// same id cannot both succeed; the loser re-reads to distinguish an unknown
// id from a lost race.
func (r *MongoRepository) MarkReviewed(ctx context.Context, id, status, reviewedBy string, reviewedAt time.Time, comments string) error {
	filter := bson.M{
		"_id":    id,
		"status": model.StatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
			"comments":    comments,
		},
	}

	err := r.Operations.FindOneAndUpdate(ctx, filter, update).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	// Guard failed: unknown id or already decided?
	count, cErr := r.Operations.CountDocuments(ctx, bson.M{"_id": id})
	if cErr != nil {
		return cErr
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrNotPending
}

func (r *MongoRepository) SetOperationDocumentID(ctx context.Context, id, documentID string) error {
	update := bson.M{"$set": bson.M{"document_id": documentID}}
	res, err := r.Operations.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteOperation(ctx context.Context, id string) error {
	res, err := r.Operations.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
