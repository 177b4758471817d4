// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account.
type User struct {
	ID             uuid.UUID // Assigned by the user store at creation; never changes.
	Email          string    // Case-sensitive uniqueness key used for signup and signin.
	PasswordRecord string    // "<saltHex>.<hashHex>" as produced by the password hasher. Never the raw password.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
