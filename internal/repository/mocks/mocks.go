package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rpggio/bizdesk/internal/entity"
)

// Repository is a mock for entity.Repository.
type Repository[T entity.Record[T]] struct {
	mock.Mock
}

func (m *Repository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]T); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	if rec, ok := args.Get(0).(T); ok {
		return rec, args.Error(1)
	}
	var zero T
	return zero, args.Error(1)
}

func (m *Repository[T]) Insert(ctx context.Context, rec T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *Repository[T]) Replace(ctx context.Context, rec T) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *Repository[T]) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TokenStore is a mock for auth.TokenStore.
type TokenStore struct {
	mock.Mock
}

func (m *TokenStore) Save(ctx context.Context, tokenHash, email string) error {
	args := m.Called(ctx, tokenHash, email)
	return args.Error(0)
}

func (m *TokenStore) Resolve(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *TokenStore) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}
