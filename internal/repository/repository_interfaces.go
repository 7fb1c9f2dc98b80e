package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// BoxSetsRepositoryInterface defines box catalog persistence operations.
type BoxSetsRepositoryInterface interface {
	GetActive(ctx context.Context) (*BoxSetConfig, error)
	Create(ctx context.Context, boxes []BoxEntry, createdBy string) (*BoxSetConfig, error)
	List(ctx context.Context, limit int) ([]BoxSetConfig, error)
}

// UserRepositoryInterface defines user persistence operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// TokenRepositoryInterface defines token persistence operations.
type TokenRepositoryInterface interface {
	Create(ctx context.Context, token *model.Token) error
	FindByToken(ctx context.Context, token string) (*model.Token, error)
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID, tokenType string) error
}

// Compile-time interface checks.
var (
	_ BoxSetsRepositoryInterface = (*BoxSetsRepository)(nil)
	_ BoxSetsRepositoryInterface = (*BoxSetsRepositoryWithCircuitBreaker)(nil)
	_ UserRepositoryInterface    = (*UserRepository)(nil)
	_ TokenRepositoryInterface   = (*TokenRepository)(nil)
)
