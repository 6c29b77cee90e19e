package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry is returned when a write violates a unique index.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// translate maps gorm/driver errors onto the repository sentinels and wraps the rest.
func translate(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isDuplicateEntryError(err):
		return ErrDuplicateEntry
	}
	return fmt.Errorf("gorm: %s: %w", fmt.Sprintf(format, args...), err)
}

// isDuplicateEntryError covers drivers that do not implement gorm's error translation.
func isDuplicateEntryError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
