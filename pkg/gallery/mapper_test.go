package gallery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMapArtwork_UsesUsernameWhenPresent(t *testing.T) {
	owner := uuid.New()
	name := "Jane"
	view := MapArtwork(Artwork{UserID: owner, Username: &name}, Asset{}, &owner)

	assert.Equal(t, "Jane", view.ArtistName)
}

func TestMapArtwork_SelfNameForOwnRows(t *testing.T) {
	owner := uuid.New()
	view := MapArtwork(Artwork{UserID: owner}, Asset{}, &owner)

	assert.Equal(t, SelfName, view.ArtistName)
}

func TestMapArtwork_HandleThenOwnerIDWhenAnonymous(t *testing.T) {
	owner := uuid.New()
	handle := "jane.doe"

	view := MapArtwork(Artwork{UserID: owner, Handle: &handle}, Asset{}, nil)
	assert.Equal(t, "jane.doe", view.ArtistName)

	view = MapArtwork(Artwork{UserID: owner}, Asset{}, nil)
	assert.Equal(t, owner.String(), view.ArtistName)
}

func TestMapArtwork_PlaceholderWhenAssetEmpty(t *testing.T) {
	view := MapArtwork(Artwork{ImageURL: "artworks/x/original.jpg"}, Asset{}, nil)

	assert.Equal(t, PlaceholderImage, view.Image)
}

func TestMapArtwork_AssetLocations(t *testing.T) {
	blobView := MapArtwork(Artwork{}, Asset{Ref: "a/b.jpg", Data: []byte{1}}, nil)
	assert.Equal(t, "blob:a/b.jpg", blobView.Image)

	urlView := MapArtwork(Artwork{}, Asset{Ref: "a/b.jpg", URL: "https://cdn/x"}, nil)
	assert.Equal(t, "https://cdn/x", urlView.Image)
}

func TestMapArtwork_TagsNeverNil(t *testing.T) {
	view := MapArtwork(Artwork{Tags: nil}, Asset{}, nil)

	assert.NotNil(t, view.Tags)
	assert.Empty(t, view.Tags)
}

func TestMapArtwork_Idempotent(t *testing.T) {
	owner := uuid.New()
	a := Artwork{ID: uuid.New(), UserID: owner, Title: "Dusk", Tags: []string{"ink"}}

	first := MapArtwork(a, Asset{}, &owner)
	second := MapArtwork(a, Asset{}, &owner)

	assert.Equal(t, first, second)
}

func TestMapArtworks_ReleasedBatchFallsBackToPlaceholder(t *testing.T) {
	batch := &ResolvedBatch{assets: map[string]Asset{
		"p": {Ref: "p", Data: []byte{1, 2}},
	}}
	artworks := []Artwork{{ImageURL: "p"}}

	views := MapArtworks(artworks, batch, nil)
	assert.Equal(t, "blob:p", views[0].Image)

	batch.Release()
	views = MapArtworks(artworks, batch, nil)
	assert.Equal(t, PlaceholderImage, views[0].Image)
}
