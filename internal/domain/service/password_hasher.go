// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns plaintext passwords into storable records and checks passwords against them.
type PasswordHasher interface {
	// Hash generates a salted record from a plaintext password. Hashing the same
	// password twice yields two different records.
	Hash(password string) (string, error)

	// Verify reports whether password matches record. A malformed record never matches.
	Verify(password, record string) bool
}
