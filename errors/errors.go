package errors

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned by every attempt to modify an immutable collection.
	ErrInvalidArgument = errors.New("invalid argument: collection is read-only")
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCapacity is returned when a destination is too small to hold all the elements.
	ErrCapacity = errors.New("destination is not long enough")
)
