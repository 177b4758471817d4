// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"

	"keycard/config"
	"keycard/internal/domain/service"
)

const (
	DefaultScryptN = 16384
	DefaultScryptR = 8
	DefaultScryptP = 1

	saltBytes  = 8
	keyBytes   = 32
	saltHexLen = saltBytes * 2
	hashHexLen = keyBytes * 2
	recordSep  = "."
)

// scryptHasher implements service.PasswordHasher with records of the form "<saltHex>.<hashHex>".
// The hex salt string itself is the KDF salt input.
type scryptHasher struct {
	n, r, p int
	rand    io.Reader
}

// NewScryptHasher builds a hasher from auth.scrypt, falling back to the defaults for unset values.
func NewScryptHasher(cfg *config.Config) service.PasswordHasher {
	n, r, p := DefaultScryptN, DefaultScryptR, DefaultScryptP
	if cfg != nil && cfg.Auth != nil && cfg.Auth.Scrypt != nil {
		sc := cfg.Auth.Scrypt
		if sc.N > 0 {
			n = sc.N
		}
		if sc.R > 0 {
			r = sc.R
		}
		if sc.P > 0 {
			p = sc.P
		}
	}

	return NewScryptHasherWithParams(n, r, p)
}

// NewScryptHasherWithParams is the constructor for scryptHasher with explicit cost parameters.
func NewScryptHasherWithParams(n, r, p int) service.PasswordHasher {
	return &scryptHasher{n: n, r: r, p: p, rand: rand.Reader}
}

// Hash salts and derives a record for password. Empty passwords are hashed like any other.
func (h *scryptHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", errors.Wrap(err, "failed to read salt")
	}
	saltHex := hex.EncodeToString(salt)

	derived, err := h.derive(password, saltHex)
	if err != nil {
		return "", err
	}

	return saltHex + recordSep + hex.EncodeToString(derived), nil
}

// Verify re-derives the hash with the record's salt and compares in constant time.
// Any malformed record yields false.
func (h *scryptHasher) Verify(password, record string) bool {
	saltHex, hashHex, ok := strings.Cut(record, recordSep)
	if !ok || len(saltHex) != saltHexLen || len(hashHex) != hashHexLen {
		return false
	}
	if _, err := hex.DecodeString(saltHex); err != nil {
		return false
	}
	stored, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	derived, err := h.derive(password, saltHex)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(derived, stored) == 1
}

func (h *scryptHasher) derive(password, saltHex string) ([]byte, error) {
	derived, err := scrypt.Key([]byte(password), []byte(saltHex), h.n, h.r, h.p, keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "scrypt key derivation failed")
	}

	return derived, nil
}
