// Package repository provides refresh/blacklist token data access.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// TokenRepository implements TokenRepositoryInterface using MongoDB.
// Expired documents are reaped by the collection's TTL index.
type TokenRepository struct {
	collection *mongo.Collection
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *MongoDB) *TokenRepository {
	return &TokenRepository{
		collection: db.Tokens,
	}
}

// Create stores a token document.
func (r *TokenRepository) Create(ctx context.Context, token *model.Token) error {
	token.CreatedAt = time.Now()
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// FindByToken returns the stored document for a token string; nil when absent.
func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*model.Token, error) {
	var stored model.Token
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// IsBlacklisted reports whether an access token has been invalidated.
func (r *TokenRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"token": token, "type": "blacklist"})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByToken removes a specific token document.
func (r *TokenRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUserID removes all of a user's tokens of the given type.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "type": tokenType})
	return err
}
