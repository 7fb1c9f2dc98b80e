// Package mocks provides in-memory fakes of the repository interfaces for
// unit tests that must not touch MongoDB.
package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/repository"
)

// UserRepositoryMock is an in-memory repository.UserRepositoryInterface.
type UserRepositoryMock struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
	// CreateErr, when set, is returned by Create.
	CreateErr error
}

// NewUserRepositoryMock creates an empty user store.
func NewUserRepositoryMock() *UserRepositoryMock {
	return &UserRepositoryMock{users: make(map[primitive.ObjectID]*model.User)}
}

func (m *UserRepositoryMock) Create(_ context.Context, user *model.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.ID] = user
	return nil
}

func (m *UserRepositoryMock) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *UserRepositoryMock) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

// TokenRepositoryMock is an in-memory repository.TokenRepositoryInterface.
type TokenRepositoryMock struct {
	mu     sync.Mutex
	tokens map[string]*model.Token
}

// NewTokenRepositoryMock creates an empty token store.
func NewTokenRepositoryMock() *TokenRepositoryMock {
	return &TokenRepositoryMock{tokens: make(map[string]*model.Token)}
}

func (m *TokenRepositoryMock) Create(_ context.Context, token *model.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *TokenRepositoryMock) FindByToken(_ context.Context, token string) (*model.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[token], nil
}

func (m *TokenRepositoryMock) IsBlacklisted(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.tokens[token]
	return ok && stored.Type == "blacklist", nil
}

func (m *TokenRepositoryMock) DeleteByToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func (m *TokenRepositoryMock) DeleteByUserID(_ context.Context, userID primitive.ObjectID, tokenType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, token := range m.tokens {
		if token.UserID == userID && token.Type == tokenType {
			delete(m.tokens, key)
		}
	}
	return nil
}

// BoxSetsRepositoryMock is an in-memory repository.BoxSetsRepositoryInterface.
type BoxSetsRepositoryMock struct {
	mu      sync.Mutex
	configs []repository.BoxSetConfig
	// GetActiveErr, when set, is returned by GetActive.
	GetActiveErr error
}

// NewBoxSetsRepositoryMock creates an empty catalog store.
func NewBoxSetsRepositoryMock() *BoxSetsRepositoryMock {
	return &BoxSetsRepositoryMock{}
}

func (m *BoxSetsRepositoryMock) GetActive(_ context.Context) (*repository.BoxSetConfig, error) {
	if m.GetActiveErr != nil {
		return nil, m.GetActiveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for n := range m.configs {
		if m.configs[n].Active {
			return &m.configs[n], nil
		}
	}
	return nil, nil
}

func (m *BoxSetsRepositoryMock) Create(_ context.Context, boxes []repository.BoxEntry, createdBy string) (*repository.BoxSetConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for n := range m.configs {
		m.configs[n].Active = false
	}
	config := repository.BoxSetConfig{
		ID:        primitive.NewObjectID(),
		Boxes:     boxes,
		Active:    true,
		Version:   len(m.configs) + 1,
		CreatedBy: createdBy,
	}
	m.configs = append(m.configs, config)
	return &config, nil
}

func (m *BoxSetsRepositoryMock) List(_ context.Context, limit int) ([]repository.BoxSetConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.BoxSetConfig, len(m.configs))
	copy(out, m.configs)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Interface conformance checks.
var (
	_ repository.UserRepositoryInterface    = (*UserRepositoryMock)(nil)
	_ repository.TokenRepositoryInterface   = (*TokenRepositoryMock)(nil)
	_ repository.BoxSetsRepositoryInterface = (*BoxSetsRepositoryMock)(nil)
)
