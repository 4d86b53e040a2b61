package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// UploadRequest carries the multipart form fields of POST /upload.
// The file itself is handled separately by the handler.
type UploadRequest struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	Tags        []string `form:"tags"`
	IsPublic    *bool    `form:"is_public"`
}

func (r UploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("artwork title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
		validation.Field(&r.Tags,
			validation.Length(0, 20),
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// ListQuery filters the feed by owner identity fields.
type ListQuery struct {
	UserID   *uuid.UUID `form:"user_id"`
	Handle   *string    `form:"handle"`
	Username *string    `form:"username"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// FeedArtwork is a feed row plus the caller's engagement flags.
// Tags is always non-nil in responses.
type FeedArtwork struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"`
	Tags        []string  `json:"tags"`
	IsPublic    bool      `json:"is_public"`
	Username    *string   `json:"username"`
	Handle      *string   `json:"handle"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`

	Liked bool `json:"liked"`
	Saved bool `json:"saved"`
}

// ToFeedArtwork projects a view row and the caller's id-sets into the
// response shape. Pure and idempotent; tags default to an empty slice.
func ToFeedArtwork(row FeedRow, likedIDs, savedIDs map[uuid.UUID]struct{}) FeedArtwork {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}

	_, liked := likedIDs[row.ID]
	_, saved := savedIDs[row.ID]

	return FeedArtwork{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Tags:        tags,
		IsPublic:    row.IsPublic,
		Username:    row.Username,
		Handle:      row.Handle,
		AvatarURL:   row.AvatarURL,
		CreatedAt:   row.CreatedAt,
		Liked:       liked,
		Saved:       saved,
	}
}

// SignedURLResponse is the signed-url endpoint payload.
// signed_url is the canonical key; signedURL is kept for clients that
// still read the legacy spelling.
type SignedURLResponse struct {
	SignedURL string `json:"signed_url"`
	Legacy    string `json:"signedURL,omitempty"`
}

// ResolveResponse is the artist-resolver endpoint payload. Profile may
// be null while artworks are non-empty: the caller shows a
// "profile not found" banner over the artworks in that case.
type ResolveResponse struct {
	Profile  interface{}   `json:"profile"`
	Artworks []FeedArtwork `json:"artworks"`
}
