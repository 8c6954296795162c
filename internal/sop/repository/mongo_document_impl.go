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

func (r *MongoRepository) CreateDocument(ctx context.Context, doc *model.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.ModifiedAt = now

	_, err := r.Documents.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindDocument(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	err := r.Documents.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *MongoRepository) UpdateDocument(ctx context.Context, doc *model.Document) error {
	doc.ModifiedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"file_name":   doc.FileName,
			"file_path":   doc.FilePath,
			"file_size":   doc.FileSize,
			"category":    doc.Category,
			"brand":       doc.Brand,
			"version":     doc.Version,
			"uploaded_by": doc.UploadedBy,
			"modified_at": doc.ModifiedAt,
		},
	}

	res, err := r.Documents.UpdateOne(ctx, bson.M{"_id": doc.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteDocument(ctx context.Context, id string) error {
	res, err := r.Documents.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindDocuments(ctx context.Context, filter model.DocumentFilter) ([]*model.Document, error) {
	query := bson.M{}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Documents.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
