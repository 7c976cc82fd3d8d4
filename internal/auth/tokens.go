package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/rpggio/bizdesk/internal/repository"
)

// TokenStore persists hashed bearer tokens. Resolve and Revoke return
// repository.ErrNotFound for unknown hashes.
type TokenStore interface {
	Save(ctx context.Context, tokenHash, email string) error
	Resolve(ctx context.Context, tokenHash string) (string, error)
	Revoke(ctx context.Context, tokenHash string) error
}

// HashToken returns the hex sha256 of token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MemoryTokenStore keeps token hashes in a map.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenStore creates an empty store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: map[string]string{}}
}

func (m *MemoryTokenStore) Save(_ context.Context, tokenHash, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[tokenHash]; ok {
		return repository.ErrConflict
	}
	m.tokens[tokenHash] = email
	return nil
}

func (m *MemoryTokenStore) Resolve(_ context.Context, tokenHash string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	email, ok := m.tokens[tokenHash]
	if !ok {
		return "", repository.ErrNotFound
	}
	return email, nil
}

func (m *MemoryTokenStore) Revoke(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[tokenHash]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tokens, tokenHash)
	return nil
}
