package alterer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateKey is matched by every DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("key not found")
	// ErrInvalidSettings is returned for settings that cannot be altered in place.
	ErrInvalidSettings = errors.New("invalid settings")
)

// DuplicateKeyError is returned when two members of a collection resolve to the same key.
type DuplicateKeyError struct {
	Key interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDuplicateKey, e.Key)
}

// Is reports whether target is ErrDuplicateKey.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NotFoundError is recorded by a strict alterer for every missed alter or remove.
type NotFoundError struct {
	Op  string
	Key interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Op, e.Key, ErrNotFound)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
