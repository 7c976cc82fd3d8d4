package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/bizdesk/internal/repository"
)

// TokenRepository persists hashed admin bearer tokens
type TokenRepository struct {
	db *DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Save stores a token hash for email
func (r *TokenRepository) Save(ctx context.Context, tokenHash, email string) error {
	query := `INSERT INTO admin_tokens (token_hash, email, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, tokenHash, email, time.Now().UTC())
	if err != nil {
		if duplicateKey(err, "admin_tokens") {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Resolve returns the email a token hash was issued to and marks it used
func (r *TokenRepository) Resolve(ctx context.Context, tokenHash string) (string, error) {
	var email string
	err := r.db.QueryRowContext(ctx,
		`SELECT email FROM admin_tokens WHERE token_hash = ?`, tokenHash).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve token: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE admin_tokens SET last_used = ? WHERE token_hash = ?`, time.Now().UTC(), tokenHash); err != nil {
		return "", fmt.Errorf("failed to touch token: %w", err)
	}
	return email, nil
}

// Revoke deletes a token hash
func (r *TokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admin_tokens WHERE token_hash = ?`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
