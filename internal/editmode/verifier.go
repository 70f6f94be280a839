package editmode

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"strata/internal/platform/config"
)

// Verifier checks a candidate against the configured secret.
type Verifier interface {
	Verify(candidate string) bool
}

// PlainVerifier compares against a plaintext secret in constant time.
type PlainVerifier struct {
	secret []byte
}

func NewPlainVerifier(secret string) PlainVerifier {
	return PlainVerifier{secret: []byte(secret)}
}

func (v PlainVerifier) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), v.secret) == 1
}

// BcryptVerifier compares against a bcrypt hash.
type BcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier rejects strings that are not bcrypt hashes.
func NewBcryptVerifier(hash string) (BcryptVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return BcryptVerifier{}, fmt.Errorf("invalid edit mode password hash: %w", err)
	}
	return BcryptVerifier{hash: []byte(hash)}, nil
}

func (v BcryptVerifier) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword(v.hash, []byte(candidate)) == nil
}

// VerifierFromConfig prefers the hash when one is configured.
func VerifierFromConfig(cfg config.EditModeConfig) (Verifier, error) {
	if cfg.PasswordHash != "" {
		return NewBcryptVerifier(cfg.PasswordHash)
	}
	secret := cfg.Password
	if secret == "" {
		secret = config.DefaultEditPassword
	}
	return NewPlainVerifier(secret), nil
}
