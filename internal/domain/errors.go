package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownModel  = errors.New("unknown coaching model")
	ErrSerialization = errors.New("serialization failed")

	ErrInvalidSelection = errors.New("invalid model selection")
)

// SerializationError reports caller-supplied data that could not be rendered
// into prompt text. It matches ErrSerialization with errors.Is.
type SerializationError struct {
	Field string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize %s: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
