package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"departly/internal/domain/entity"
)

// MongoAttractionRepository serves the knowledge base from MongoDB for
// self-hosted deployments. Same contract as the Firestore adapter.
type MongoAttractionRepository struct {
	collection *mongo.Collection
}

// NewMongoAttractionRepository creates a new MongoDB knowledge-base repository
func NewMongoAttractionRepository(db *mongo.Database, collection string) *MongoAttractionRepository {
	coll := db.Collection(collection)

	// Index on City backs the equality scan
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"City": 1},
	}
	coll.Indexes().CreateOne(ctx, indexModel)

	return &MongoAttractionRepository{
		collection: coll,
	}
}

// FindByCity returns up to limit attractions whose City field equals city
func (r *MongoAttractionRepository) FindByCity(ctx context.Context, city string, limit int64) ([]entity.Attraction, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"City": city}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}

	attractions := make([]entity.Attraction, 0)
	if err := cursor.All(ctx, &attractions); err != nil {
		return nil, err
	}
	return attractions, nil
}

// FindAny returns one arbitrary document, or nil when the collection is empty
func (r *MongoAttractionRepository) FindAny(ctx context.Context) (*entity.Attraction, error) {
	var attraction entity.Attraction
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&attraction)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attraction, nil
}

// SampleFields reports the field names and decoded types of one arbitrary
// document, for the connectivity probe.
func (r *MongoAttractionRepository) SampleFields(ctx context.Context) (map[string]string, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string, len(doc))
	for name, value := range doc {
		fields[name] = fmt.Sprintf("%T", value)
	}
	return fields, nil
}
