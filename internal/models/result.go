package models

import "encoding/json"

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeValidationFailed
	OutcomeStorageFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeStorageFailed:
		return "storage_failed"
	}
	return "unknown"
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// FieldErrors maps a form field name to the messages describing why it was rejected.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Result is what every mutating action returns. Exactly one of the variants is
// populated, selected by Outcome.
type Result[T any] struct {
	Outcome  Outcome     `json:"outcome"`
	Data     T           `json:"data,omitempty"`
	Errors   FieldErrors `json:"errors,omitempty"`
	Message  string      `json:"message,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
	Cause    error       `json:"-"`
}

func OK[T any](data T, redirect string) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Data: data, Redirect: redirect}
}

func ValidationFailed[T any](errs FieldErrors, message string) Result[T] {
	return Result[T]{Outcome: OutcomeValidationFailed, Errors: errs, Message: message}
}

func StorageFailed[T any](message string, cause error) Result[T] {
	return Result[T]{Outcome: OutcomeStorageFailed, Message: message, Cause: cause}
}

func (r Result[T]) Succeeded() bool {
	return r.Outcome == OutcomeOK
}
