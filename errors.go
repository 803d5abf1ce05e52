package orm

import (
	"errors"
	"fmt"

	"gorm.io/orm/logger"
)

var (
	// ErrRecordNotFound record not found error
	ErrRecordNotFound = logger.ErrRecordNotFound
	// ErrPrimaryKeyRequired primary keys required
	ErrPrimaryKeyRequired = errors.New("primary key required")
	// ErrInvalidField invalid field
	ErrInvalidField = errors.New("invalid field")
	// ErrModelNotRegistered model not registered
	ErrModelNotRegistered = errors.New("model not registered")
	// ErrConnection failed to connect to the database
	ErrConnection = errors.New("connection failed")
	// ErrMissingDialector missing dialector
	ErrMissingDialector = errors.New("dialector required")
)

// LookupError is returned by QuerySet.Get for a key past the fetched rows
type LookupError struct {
	Model string
	Key   int
	Len   int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: no record at position %d, %d fetched", e.Model, e.Key, e.Len)
}

func (e *LookupError) Unwrap() error {
	return ErrRecordNotFound
}
