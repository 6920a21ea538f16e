package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyHistory      = errors.New("history is empty")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrUnrecognizedInput = errors.New("unrecognized input")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidSettings   = errors.New("invalid settings")
)

// InsufficientDataError reports that a prediction needs more history.
type InsufficientDataError struct {
	Count    int
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: have %d, need %d", ErrInsufficientData, e.Count, e.Required)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// Missing returns how many more results are needed.
func (e *InsufficientDataError) Missing() int {
	if e.Required <= e.Count {
		return 0
	}
	return e.Required - e.Count
}
