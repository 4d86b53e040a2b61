package model

import (
	"time"

	"github.com/google/uuid"
)

// Artwork is an uploaded piece. ImageURL is the storage path of the
// original object inside the artworks bucket; it is never a URL.
// Rows are immutable after upload except for variant bookkeeping
// written by the worker.
type Artwork struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Tags        []string  `json:"tags"`
	IsPublic    bool      `json:"is_public"`

	// Set by the worker once resized variants exist.
	VariantsReady bool `json:"variants_ready"`

	CreatedAt time.Time `json:"created_at"`
}

// FeedRow is a row of the artworks_with_username view: an artwork
// joined with its owner's public identity.
type FeedRow struct {
	Artwork
	Username  *string `json:"username"`
	Handle    *string `json:"handle"`
	AvatarURL *string `json:"avatar_url"`
}

// Lookup fields the resolver fallback may query the view by.
// user_id is only tried when the requested identifier is UUID-shaped.
const (
	LookupFieldHandle   = "handle"
	LookupFieldUsername = "username"
	LookupFieldUserID   = "user_id"
)
