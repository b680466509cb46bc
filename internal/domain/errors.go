package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrItemNotFound is returned when a referenced row does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateItem is returned when an insert would create a second
	// active shopping-list row for the same normalized identity
	ErrDuplicateItem = errors.New("active item already exists for this ingredient")

	// ErrStaleSnapshot is returned when reconciliation operations target rows
	// that changed underneath the caller; the caller must re-fetch and retry
	ErrStaleSnapshot = errors.New("shopping list changed since snapshot was read")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
