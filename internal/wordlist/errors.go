package wordlist

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText       = errors.New("word text is empty")
	ErrWordNotFound    = errors.New("word not found")
	ErrInvalidPosition = errors.New("position out of range")
	ErrInvalidCount    = errors.New("count out of range")
)

// ValidationError reports input the manager rejected. State is never
// modified when one is returned.
type ValidationError struct {
	Op  string
	ID  string
	Err error
}

func (e *ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(op, id string, err error) error {
	return &ValidationError{Op: op, ID: id, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
