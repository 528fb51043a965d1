package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	internal_errors "github.com/itchan-dev/forumapi/shared/errors"
	"golang.org/x/crypto/bcrypt"
)

// PrefixedIdGenerator hands out ids of the form "<prefix>-<random hex>".
// Uniqueness rests on uuid v4 randomness; the prefix namespaces ids per entity.
type PrefixedIdGenerator struct {
	Prefix string
}

func NewIdGenerator(prefix string) *PrefixedIdGenerator {
	return &PrefixedIdGenerator{Prefix: prefix}
}

func (g *PrefixedIdGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s id: %w", g.Prefix, err)
	}
	return g.Prefix + "-" + strings.ReplaceAll(id.String(), "-", ""), nil
}

// BcryptHasher hashes and checks user passwords.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", internal_errors.BadRequest("password tidak boleh lebih dari 72 byte")
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return internal_errors.Unauthorized("kredensial yang Anda masukkan salah")
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
