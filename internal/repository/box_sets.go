// Package repository provides data access for box catalogs.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BoxEntry is one box type inside a stored catalog.
type BoxEntry struct {
	Reference   string `bson:"reference" json:"reference"`
	InnerWidth  int    `bson:"inner_width" json:"inner_width"`
	InnerLength int    `bson:"inner_length" json:"inner_length"`
	InnerDepth  int    `bson:"inner_depth" json:"inner_depth"`
	EmptyWeight int    `bson:"empty_weight" json:"empty_weight"`
	MaxWeight   int    `bson:"max_weight" json:"max_weight"`
	Quantity    *int   `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// BoxSetConfig is a versioned box catalog document. Exactly one document is
// active at a time; replacing the catalog deactivates the old version.
type BoxSetConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Boxes     []BoxEntry         `bson:"boxes" json:"boxes"`
	Active    bool               `bson:"active" json:"active"`
	Version   int                `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// BoxSetsRepository provides box catalog persistence.
type BoxSetsRepository struct {
	collection *mongo.Collection
}

// NewBoxSetsRepository creates a new box sets repository.
func NewBoxSetsRepository(db *MongoDB) *BoxSetsRepository {
	return &BoxSetsRepository{
		collection: db.BoxSets,
	}
}

// GetActive returns the active box catalog, or nil when none exists.
func (r *BoxSetsRepository) GetActive(ctx context.Context) (*BoxSetConfig, error) {
	var config BoxSetConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create stores a new catalog version and makes it the active one.
func (r *BoxSetsRepository) Create(ctx context.Context, boxes []BoxEntry, createdBy string) (*BoxSetConfig, error) {
	current, err := r.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	version := 1
	if current != nil {
		version = current.Version + 1
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := BoxSetConfig{
		ID:        primitive.NewObjectID(),
		Boxes:     boxes,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns catalog versions, newest first.
func (r *BoxSetsRepository) List(ctx context.Context, limit int) ([]BoxSetConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []BoxSetConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
