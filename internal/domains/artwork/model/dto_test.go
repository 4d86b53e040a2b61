package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToFeedArtwork_TagsNeverNil(t *testing.T) {
	row := FeedRow{Artwork: Artwork{ID: uuid.New(), Tags: nil}}

	out := ToFeedArtwork(row, nil, nil)

	assert.NotNil(t, out.Tags)
	assert.Empty(t, out.Tags)
}

func TestToFeedArtwork_EngagementFlags(t *testing.T) {
	id := uuid.New()
	row := FeedRow{Artwork: Artwork{ID: id}}
	liked := map[uuid.UUID]struct{}{id: {}}

	out := ToFeedArtwork(row, liked, nil)
	assert.True(t, out.Liked)
	assert.False(t, out.Saved)

	out = ToFeedArtwork(row, nil, map[uuid.UUID]struct{}{id: {}})
	assert.False(t, out.Liked)
	assert.True(t, out.Saved)
}

func TestToFeedArtwork_Idempotent(t *testing.T) {
	row := FeedRow{Artwork: Artwork{ID: uuid.New(), Title: "Dusk", Tags: []string{"ink"}}}

	first := ToFeedArtwork(row, nil, nil)
	second := ToFeedArtwork(row, nil, nil)

	assert.Equal(t, first, second)
}

func TestUploadRequestValidate(t *testing.T) {
	assert.Error(t, UploadRequest{}.Validate(), "title is required")
	assert.NoError(t, UploadRequest{Title: "Dusk"}.Validate())
	assert.Error(t, UploadRequest{Title: "Dusk", Tags: make([]string, 21)}.Validate())
}
