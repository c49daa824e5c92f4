package pin

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrInvalidPin = errors.New("invalid pin")
)

// Hash generates a bcrypt hash of the PIN
func Hash(rawPin string) (string, error) {
	if rawPin == "" {
		return "", errors.New("pin cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(rawPin), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided PIN matches the hash
func Verify(rawPin, hash string) error {
	if rawPin == "" || hash == "" {
		return ErrInvalidPin
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPin
		}
		return fmt.Errorf("failed to verify pin: %w", err)
	}

	return nil
}
