// Package security provides the password encoder used for stored credentials.
package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"instagram_backend/internal/feature/user/usecase"
)

// BcryptEncoder encodes passwords with bcrypt.
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder creates a BcryptEncoder.
// A cost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

// Encode returns the bcrypt hash of raw.
// Passwords longer than 72 bytes return usecase.ErrInvalidArgument.
func (e *BcryptEncoder) Encode(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password exceeds 72 bytes", usecase.ErrInvalidArgument)
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Matches reports whether raw is the password encoded in encoded.
func (e *BcryptEncoder) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
