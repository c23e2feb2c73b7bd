package businessflow

import (
	"errors"
	"fmt"
)

// Sentinel errors for business rule violations
var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrShowNotFound   = errors.New("show not found")
	ErrStoreFailure   = errors.New("could not persist changes")
)

// BusinessError wraps a sentinel with a machine-readable code and a
// user-facing message
type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{Code: code, Message: message, Err: err}
}

// IsNotFound reports whether err is any of the missing-entity sentinels
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrArtistNotFound) ||
		errors.Is(err, ErrShowNotFound)
}

// IsVenueNotFound checks if the error indicates a missing venue
func IsVenueNotFound(err error) bool {
	return errors.Is(err, ErrVenueNotFound)
}

// IsArtistNotFound checks if the error indicates a missing artist
func IsArtistNotFound(err error) bool {
	return errors.Is(err, ErrArtistNotFound)
}

// IsShowNotFound checks if the error indicates a missing show
func IsShowNotFound(err error) bool {
	return errors.Is(err, ErrShowNotFound)
}

// IsStoreFailure checks if the error indicates a failed persistence attempt
func IsStoreFailure(err error) bool {
	return errors.Is(err, ErrStoreFailure)
}
