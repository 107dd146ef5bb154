package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storeops/backoffice-api/internal/core/domain"
)

// ResourceRepository implements the shared CRUD shape over the schemaless
// back-office collections. Each domain.Resource maps 1:1 to a collection of
// the same name.
type ResourceRepository struct {
	db *mongo.Database
}

func NewResourceRepository(db *mongo.Database) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) coll(res domain.Resource) *mongo.Collection {
	return r.db.Collection(string(res))
}

// decode flattens the Mongo _id into the public "id" key.
func decode(raw bson.M) domain.Document {
	doc := domain.Document(raw)
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		delete(doc, "_id")
		doc["id"] = oid.Hex()
	}
	return doc
}

func (r *ResourceRepository) Insert(ctx context.Context, res domain.Resource, doc domain.Document) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	delete(doc, "id") // ids are store-generated
	result, err := r.coll(res).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("insert %s document: %w", res, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc["id"] = oid.Hex()
	}
	return doc, nil
}

func (r *ResourceRepository) FindAll(ctx context.Context, res domain.Resource) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll(res).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s documents: %w", res, err)
	}
	defer cursor.Close(ctx)

	docs := make([]domain.Document, 0)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", res, err)
		}
		docs = append(docs, decode(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s documents: %w", res, err)
	}
	return docs, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res domain.Resource, id string, doc domain.Document) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	delete(doc, "id")
	result, err := r.coll(res).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(doc)})
	if err != nil {
		return nil, fmt.Errorf("update %s document: %w", res, err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	var raw bson.M
	if err := r.coll(res).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		return nil, fmt.Errorf("reload %s document: %w", res, err)
	}
	return decode(raw), nil
}

func (r *ResourceRepository) Delete(ctx context.Context, res domain.Resource, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDocumentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.coll(res).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s document: %w", res, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *ResourceRepository) Count(ctx context.Context, res domain.Resource) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll(res).CountDocuments(ctx, bson.M{})
}
