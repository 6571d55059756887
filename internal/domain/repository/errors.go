package repository

import "errors"

// ErrNotFound is returned by lookups that miss and by writes whose key matched
// no row. Repositories report it unmodified; classification into an HTTP-style
// kind happens in the application layer.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate")
