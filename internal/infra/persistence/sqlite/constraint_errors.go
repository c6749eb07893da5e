package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for SQLite error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The sqlite driver surfaces constraint failures as plain error text
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed")
}
