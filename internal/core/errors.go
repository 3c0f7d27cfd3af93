package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownEntity is returned for an entity key that is not registered.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrRecordNotFound is returned when no record has the requested id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrImportNotSupported is returned when importing into an entity
	// without an import schema.
	ErrImportNotSupported = errors.New("import not supported for this entity")

	// ErrNoFile is returned when an import carries no file content.
	ErrNoFile = errors.New("no file provided")

	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrInvalidQuantity is returned for a delivery quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidRequest is returned for a request body or parameter that
	// cannot be understood.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInsufficientStock is returned when a delivery exceeds the stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// UnknownEntityError reports an unregistered entity key together with the
// registered keys it most likely meant. It matches ErrUnknownEntity.
type UnknownEntityError struct {
	Key         string
	Suggestions []string
}

func (e *UnknownEntityError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %s", ErrUnknownEntity, e.Key)
	}
	return fmt.Sprintf("%v: %s (did you mean %s?)", ErrUnknownEntity, e.Key, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrUnknownEntity
}
