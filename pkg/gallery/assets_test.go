package gallery

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAssets_AuthenticatedDownloadWins(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/image", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	})

	client := newTestClient(t, mux)
	loggedIn(client)

	batch := client.ResolveAssets(context.Background(), []string{"artworks/a/original.jpg"})
	asset := batch.Asset("artworks/a/original.jpg")

	assert.Equal(t, []byte("jpeg-bytes"), asset.Data)
	assert.Empty(t, asset.URL)
}

func TestResolveAssets_SignedURLFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/image", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
	})
	mux.HandleFunc("/signed-url", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"signed_url": "https://cdn/signed"})
	})

	client := newTestClient(t, mux)

	batch := client.ResolveAssets(context.Background(), []string{"p"})
	assert.Equal(t, "https://cdn/signed", batch.Asset("p").URL)
}

func TestResolveAssets_AcceptsLegacySignedURLKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/image", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Object not found")
	})
	mux.HandleFunc("/signed-url", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"signedURL": "https://cdn/legacy"})
	})

	client := newTestClient(t, mux)

	batch := client.ResolveAssets(context.Background(), []string{"p"})
	assert.Equal(t, "https://cdn/legacy", batch.Asset("p").URL)
}

func TestResolveAssets_EmptyAssetWhenEverythingFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})

	client := newTestClient(t, mux)

	batch := client.ResolveAssets(context.Background(), []string{"p"})
	asset := batch.Asset("p")

	assert.True(t, asset.Empty())
	assert.Equal(t, "", asset.Location())
}

func TestResolvedBatch_ReleaseExactlyOnce(t *testing.T) {
	batch := &ResolvedBatch{assets: map[string]Asset{
		"p": {Ref: "p", Data: []byte{1}},
	}}

	require.False(t, batch.Released())
	batch.Release()
	assert.True(t, batch.Released())
	assert.True(t, batch.Asset("p").Empty())

	// A second release is a no-op, not a panic or a state change.
	batch.Release()
	assert.True(t, batch.Released())
}

func TestResolveAssets_RefetchReleasesPriorBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/image", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	})

	client := newTestClient(t, mux)
	loggedIn(client)

	first := client.ResolveAssets(context.Background(), []string{"a"})
	require.False(t, first.Released())

	second := client.ResolveAssets(context.Background(), []string{"b"})

	assert.True(t, first.Released(), "installing a new batch must release the previous one")
	assert.False(t, second.Released())
	assert.Equal(t, []byte("x"), second.Asset("b").Data)
}
