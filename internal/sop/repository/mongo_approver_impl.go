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

func (r *MongoRepository) FindApproverByUsername(ctx context.Context, username string) (*model.Approver, error) {
	var approver model.Approver
	err := r.Approvers.FindOne(ctx, bson.M{"username": username}).Decode(&approver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &approver, nil
}

func (r *MongoRepository) FindActiveApprovers(ctx context.Context) ([]*model.Approver, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.Approvers.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var approvers []*model.Approver
	if err := cursor.All(ctx, &approvers); err != nil {
		return nil, err
	}
	return approvers, nil
}

func (r *MongoRepository) CountApprovers(ctx context.Context) (int64, error) {
	return r.Approvers.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) CreateApprover(ctx context.Context, approver *model.Approver) error {
	if approver.ID == "" {
		approver.ID = uuid.New().String()
	}
	if approver.CreatedAt.IsZero() {
		approver.CreatedAt = time.Now()
	}

	_, err := r.Approvers.InsertOne(ctx, approver)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}
