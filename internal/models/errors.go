package models

import "errors"

var (
	ErrDuplicate        = errors.New("record already exists")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrFetchFailed      = errors.New("fetch failed")
)

// FetchError carries the user-facing message of a failed read and matches ErrFetchFailed.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

func FetchFailed(message string) error {
	return &FetchError{Message: message}
}
