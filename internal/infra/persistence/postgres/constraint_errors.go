package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on TranslateError, which makes the postgres dialector
// report SQLSTATE 23505 as gorm.ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
