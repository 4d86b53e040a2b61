package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArtworkNotFound = "ART001"
	ErrCodeObjectNotFound  = "ART002"
	ErrCodeInvalidImage    = "ART003"
	ErrCodeInvalidLookup   = "ART004"
	ErrCodeNotCreator      = "ART005"
)

// Errors
var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrObjectNotFound  = errors.New("storage object not found")
	ErrInvalidImage    = errors.New("invalid image file")
	ErrInvalidLookup   = errors.New("lookup field not allowed")
	ErrNotCreator      = errors.New("only creators can upload artworks")
)

// ArtworkError custom error type
type ArtworkError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArtworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ArtworkError) Unwrap() error {
	return e.Err
}

func NewArtworkNotFoundError() *ArtworkError {
	return &ArtworkError{
		Code:    ErrCodeArtworkNotFound,
		Message: "Artwork not found",
		Err:     ErrArtworkNotFound,
	}
}

func NewInvalidImageError(err error) *ArtworkError {
	return &ArtworkError{
		Code:    ErrCodeInvalidImage,
		Message: "Uploaded file is not a valid image",
		Err:     err,
	}
}

func NewNotCreatorError() *ArtworkError {
	return &ArtworkError{
		Code:    ErrCodeNotCreator,
		Message: "Only creator accounts can upload artworks",
		Err:     ErrNotCreator,
	}
}
