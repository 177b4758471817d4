// Package model holds the GORM persistence models. They mirror tables and never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUID v7 assigned by the repository.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordRecord string    `gorm:"type:varchar(128);not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_users_created_at"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
