package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Documents  *mongo.Collection
	Operations *mongo.Collection
	Approvers  *mongo.Collection
	History    *mongo.Collection
	Client     *mongo.Client // for transactions
}

func NewMongoRepository(db *mongo.Database, documentsColl, operationsColl, approversColl, historyColl string) *MongoRepository {
	repo := &MongoRepository{
		Documents:  db.Collection(documentsColl),
		Operations: db.Collection(operationsColl),
		Approvers:  db.Collection(approversColl),
		History:    db.Collection(historyColl),
		Client:     db.Client(),
	}
	return repo
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Pending operations: sweeper scans status + requested_at, UI scans by
	// document and by assigned approver
	idxOpStatus := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "requested_at", Value: 1},
		},
		Options: options.Index().SetName("idx_op_status_requested_at"),
	}
	idxOpDocument := mongo.IndexModel{
		Keys:    bson.D{{Key: "document_id", Value: 1}},
		Options: options.Index().SetName("idx_op_document"),
	}
	idxOpApprover := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "assigned_approver_id", Value: 1},
		},
		Options: options.Index().SetName("idx_op_status_approver"),
	}
	_, err := r.Operations.Indexes().CreateMany(ctx, []mongo.IndexModel{idxOpStatus, idxOpDocument, idxOpApprover})
	if err != nil {
		return err
	}

	// 2. Approvers: unique username
	idxApproverUsername := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_approver_username"),
	}
	_, err = r.Approvers.Indexes().CreateMany(ctx, []mongo.IndexModel{idxApproverUsername})
	if err != nil {
		return err
	}

	// 3. History: per-document lookups and recent-first listings
	idxHistoryDocument := mongo.IndexModel{
		Keys:    bson.D{{Key: "document_id", Value: 1}},
		Options: options.Index().SetName("idx_history_document"),
	}
	idxHistoryTimestamp := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("idx_history_timestamp"),
	}
	idxHistoryAction := mongo.IndexModel{
		Keys:    bson.D{{Key: "action_type", Value: 1}},
		Options: options.Index().SetName("idx_history_action_type"),
	}
	_, err = r.History.Indexes().CreateMany(ctx, []mongo.IndexModel{idxHistoryDocument, idxHistoryTimestamp, idxHistoryAction})
	if err != nil {
		return err
	}

	// 4. Documents: brand/category filters
	idxDocBrand := mongo.IndexModel{
		Keys:    bson.D{{Key: "brand", Value: 1}},
		Options: options.Index().SetName("idx_doc_brand"),
	}
	idxDocCategory := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("idx_doc_category"),
	}
	_, err = r.Documents.Indexes().CreateMany(ctx, []mongo.IndexModel{idxDocBrand, idxDocCategory})
	return err
}

// WithTransaction runs fn inside one mongo session transaction. Writes made
// with the callback context commit together; any error aborts them all.
func (r *MongoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}
