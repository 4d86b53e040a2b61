package gallery

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderImage substitutes for artworks whose image could not be
// resolved.
const PlaceholderImage = "/placeholder.svg"

// SelfName is shown for the session user's own artworks when the row
// carries no username.
const SelfName = "You"

// ArtworkView is the flat display shape of an artwork.
type ArtworkView struct {
	ID           uuid.UUID
	Title        string
	Description  string
	ArtistName   string
	ArtistHandle string
	Image        string
	Tags         []string
	Liked        bool
	Saved        bool
	CreatedAt    time.Time
}

// MapArtwork projects an artwork and its resolved asset into the
// display shape. Pure and idempotent. Artist name precedence: the row's
// username, then "You" when the viewer owns the row, then the owner's
// handle, then the owner id. Tags are never nil; an unresolved image
// becomes the placeholder.
func MapArtwork(a Artwork, asset Asset, viewer *uuid.UUID) ArtworkView {
	name := ""
	switch {
	case a.Username != nil && *a.Username != "":
		name = *a.Username
	case viewer != nil && *viewer == a.UserID:
		name = SelfName
	case a.Handle != nil && *a.Handle != "":
		name = *a.Handle
	default:
		name = a.UserID.String()
	}

	handle := ""
	if a.Handle != nil {
		handle = *a.Handle
	}
	description := ""
	if a.Description != nil {
		description = *a.Description
	}

	image := asset.Location()
	if image == "" {
		image = PlaceholderImage
	}

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return ArtworkView{
		ID:           a.ID,
		Title:        a.Title,
		Description:  description,
		ArtistName:   name,
		ArtistHandle: handle,
		Image:        image,
		Tags:         tags,
		Liked:        a.Liked,
		Saved:        a.Saved,
		CreatedAt:    a.CreatedAt,
	}
}

// MapArtworks maps a page of artworks against a resolved batch.
func MapArtworks(artworks []Artwork, batch *ResolvedBatch, viewer *uuid.UUID) []ArtworkView {
	views := make([]ArtworkView, 0, len(artworks))
	for _, a := range artworks {
		var asset Asset
		if batch != nil {
			asset = batch.Asset(a.ImageURL)
		}
		views = append(views, MapArtwork(a, asset, viewer))
	}
	return views
}
