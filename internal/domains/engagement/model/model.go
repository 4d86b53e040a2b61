package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind selects the join table a toggle operates on.
type Kind string

const (
	KindLike Kind = "like"
	KindSave Kind = "save"
)

// Table returns the backing table for a kind.
func (k Kind) Table() (string, error) {
	switch k {
	case KindLike:
		return "likes", nil
	case KindSave:
		return "saves", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// Engagement is a like or save row. Existence of the row is the sole
// source of truth for the liked/saved state; there is no payload
// beyond the key pair.
type Engagement struct {
	UserID    uuid.UUID `json:"user_id"`
	ArtworkID uuid.UUID `json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Errors
var (
	ErrUnknownKind = errors.New("unknown engagement kind")
)

// IDSetResponse lists a user's engaged artwork ids for one kind.
type IDSetResponse struct {
	ArtworkIDs []uuid.UUID `json:"artwork_ids"`
}
