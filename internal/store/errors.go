package store

import "errors"

var (
	// ErrCorrupt is returned when a stored collection exists but is not a JSON
	// array of objects. Mutations on such a collection are refused so the
	// original content stays available for repair.
	ErrCorrupt = errors.New("collection is corrupt")

	// ErrDuplicateID is returned by Create when the caller supplies an id that
	// is already present in the collection.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrInvalidName is returned for collection names that are empty or would
	// escape the backend's namespace.
	ErrInvalidName = errors.New("invalid collection name")
)
