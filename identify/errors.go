package identify

import (
	"errors"
	"fmt"

	"github.com/chordial/chordial/theory"
)

// ErrorCode tags the structured failures the safe API can return
type ErrorCode string

const (
	ErrCodeEmptyInput     ErrorCode = "EMPTY_INPUT"
	ErrCodeTooManyNotes   ErrorCode = "TOO_MANY_NOTES"
	ErrCodeNoteOutOfRange ErrorCode = "NOTE_OUT_OF_RANGE"
	ErrCodeInvalidBass    ErrorCode = "INVALID_BASS"
	ErrCodeStoreNotReady  ErrorCode = "STORE_NOT_READY"
	ErrCodeInternal       ErrorCode = "INTERNAL"
)

// Severity separates recoverable input problems from fatal engine state
type Severity string

const (
	SeverityError    Severity = "error"    // recoverable, caller can fix the input
	SeverityCritical Severity = "critical" // engine cannot serve lookups at all
)

// ErrStoreNotReady is returned when an identifier is used before its
// pattern store loaded
var ErrStoreNotReady = errors.New("pattern store not initialized")

// IdentificationError is the tagged error surface of the safe API.
// "No match found" is never an error: unmatched input yields a successful
// UNKNOWN result instead.
type IdentificationError struct {
	Code     ErrorCode `json:"code"`
	Severity Severity  `json:"severity"`
	Err      error     `json:"-"`
}

func (e *IdentificationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *IdentificationError) Unwrap() error {
	return e.Err
}

// classify maps a validation error onto its tagged code
func classify(err error) *IdentificationError {
	code := ErrCodeInternal
	severity := SeverityError
	switch {
	case errors.Is(err, theory.ErrEmptyInput):
		code = ErrCodeEmptyInput
	case errors.Is(err, theory.ErrTooManyNotes):
		code = ErrCodeTooManyNotes
	case errors.Is(err, theory.ErrNoteOutOfRange):
		code = ErrCodeNoteOutOfRange
	case errors.Is(err, theory.ErrInvalidBass):
		code = ErrCodeInvalidBass
	case errors.Is(err, ErrStoreNotReady):
		code = ErrCodeStoreNotReady
		severity = SeverityCritical
	}
	return &IdentificationError{Code: code, Severity: severity, Err: err}
}
