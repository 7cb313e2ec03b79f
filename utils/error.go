package utils

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrorRecordNotFound = errors.New("record not found")

// ErrorProjectScopeMismatch is returned when a layer references an EPD that
// belongs to a different project than the owning assembly.
var ErrorProjectScopeMismatch = errors.New("epd project does not match assembly project")

// ErrorDuplicateOriginVersion is the classified form of the unique constraint
// on (origin_id, version). Concurrent importers can race into it even though
// the upsert path checks existence first.
var ErrorDuplicateOriginVersion = errors.New("epd with this origin_id and version already exists")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}

// AsNotFound collapses gorm's sentinel into ours so callers only match one.
func AsNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorRecordNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation from
// the backing store (postgres 23505 or sqlite's UNIQUE message).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
