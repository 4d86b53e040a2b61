package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProfileNotFound    = "PRF001"
	ErrCodeEmailTaken         = "PRF002"
	ErrCodeHandleTaken        = "PRF003"
	ErrCodeInvalidCredentials = "PRF004"
	ErrCodeUnauthorized       = "PRF005"
	ErrCodeNotCreator         = "PRF006"
)

// Errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrHandleTaken        = errors.New("handle already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized to perform this action")
	ErrNotCreator         = errors.New("only creators can upload")
)

// ProfileError custom error type
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewProfileNotFoundError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeProfileNotFound,
		Message: "Profile not found",
		Err:     ErrProfileNotFound,
	}
}

func NewEmailTakenError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeEmailTaken,
		Message: "An account with this email already exists",
		Err:     ErrEmailTaken,
	}
}

func NewHandleTakenError(handle string) *ProfileError {
	return &ProfileError{
		Code:    ErrCodeHandleTaken,
		Message: fmt.Sprintf("Handle %q is already taken", handle),
		Err:     ErrHandleTaken,
	}
}

func NewInvalidCredentialsError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid email or password",
		Err:     ErrInvalidCredentials,
	}
}
