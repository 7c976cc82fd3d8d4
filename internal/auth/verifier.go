package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a credential pair. Implementations return
// ErrInvalidCredentials for any mismatch.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
}

// Admin is one configured administrator account.
type Admin struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

// BcryptVerifier checks passwords against bcrypt hashes keyed by email.
// Unknown emails are compared against a dummy hash of the same cost.
type BcryptVerifier struct {
	hashes  map[string][]byte
	dummy   []byte
	compare func(hash, password []byte) error
}

// NewBcryptVerifier indexes admins by normalized email.
func NewBcryptVerifier(admins []Admin) *BcryptVerifier {
	v := &BcryptVerifier{
		hashes:  make(map[string][]byte, len(admins)),
		compare: bcrypt.CompareHashAndPassword,
	}
	cost := bcrypt.DefaultCost
	for _, a := range admins {
		v.hashes[normalizeEmail(a.Email)] = []byte(a.PasswordHash)
		if c, err := bcrypt.Cost([]byte(a.PasswordHash)); err == nil {
			cost = c
		}
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("bizdesk-unknown-admin"), cost)
	if err != nil {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("bizdesk-unknown-admin"), bcrypt.DefaultCost)
	}
	v.dummy = dummy
	return v
}

// Verify compares password with the stored hash for email.
func (v *BcryptVerifier) Verify(_ context.Context, email, password string) error {
	hash, ok := v.hashes[normalizeEmail(email)]
	if !ok {
		_ = v.compare(v.dummy, []byte(password))
		return ErrInvalidCredentials
	}
	if err := v.compare(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for Admin.PasswordHash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
