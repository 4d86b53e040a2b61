package gallery

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArtist_FoundViaEndpoint(t *testing.T) {
	artistID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jane.doe", r.URL.Query().Get("handle"))
		writeData(w, map[string]interface{}{
			"profile": map[string]interface{}{
				"id":       artistID.String(),
				"username": "Jane",
				"handle":   "jane.doe",
			},
			"artworks": []map[string]interface{}{{"id": uuid.New().String(), "user_id": artistID.String()}},
		})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "jane.doe")

	assert.Equal(t, Found, res.Outcome)
	require.NotNil(t, res.Profile)
	assert.Equal(t, artistID, res.Profile.ID)
	assert.Len(t, res.Artworks, 1)
}

func TestResolveArtist_RedirectWhenCanonicalHandleDiffers(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeData(w, map[string]interface{}{
			"profile": map[string]interface{}{
				"id":       uuid.New().String(),
				"username": "Jane",
				"handle":   "jane.doe",
			},
			"artworks": []map[string]interface{}{},
		})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "Jane")

	assert.Equal(t, Redirect, res.Outcome)
	assert.Equal(t, "jane.doe", res.Canonical)
	assert.Equal(t, 1, requests, "a redirect must not trigger further fetches")
}

func TestResolveArtist_ArtworksOnlyBanner(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]interface{}{
			"profile":  nil,
			"artworks": []map[string]interface{}{{"id": uuid.New().String()}},
		})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "ghost")

	assert.Equal(t, ArtworksOnly, res.Outcome)
	assert.Nil(t, res.Profile)
	assert.Len(t, res.Artworks, 1)
	assert.Equal(t, ArtworksOnlyBanner, res.Banner)
}

func TestResolveArtist_EndpointNotFoundIsAuthoritative(t *testing.T) {
	artworkLookups := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "PRF001", "Profile not found")
	})
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		artworkLookups++
		writeData(w, []map[string]interface{}{})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "nobody")

	assert.Equal(t, NotFound, res.Outcome)
	assert.Zero(t, artworkLookups)
}

func TestResolveArtist_FallbackChainOnEndpointFailure(t *testing.T) {
	var fields []string
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for _, f := range []string{"handle", "username", "user_id"} {
			if q.Get(f) != "" {
				fields = append(fields, f)
				if f == "username" {
					writeData(w, []map[string]interface{}{{
						"id":       uuid.New().String(),
						"username": "ghost",
					}})
					return
				}
			}
		}
		writeData(w, []map[string]interface{}{})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "ghost")

	assert.Equal(t, ArtworksOnly, res.Outcome)
	assert.Equal(t, []string{"handle", "username"}, fields, "strategies must run in order and stop at the first hit")
}

// End-to-end: the resolver endpoint is unreachable and the artwork rows
// carry a newer canonical handle, so the lookup yields exactly one
// redirect and no further fetches.
func TestResolveArtist_CanonicalRedirectScenario(t *testing.T) {
	requestsAfterHit := 0
	hit := false
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		if hit {
			requestsAfterHit++
		}
		if r.URL.Query().Get("username") == "Jane" {
			hit = true
			writeData(w, []map[string]interface{}{{
				"id":       uuid.New().String(),
				"username": "Jane",
				"handle":   "jane.doe",
			}})
			return
		}
		writeData(w, []map[string]interface{}{})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "Jane")

	assert.Equal(t, Redirect, res.Outcome)
	assert.Equal(t, "jane.doe", res.Canonical)
	assert.Zero(t, requestsAfterHit, "a redirect ends the pass")
}

func TestResolveArtist_UUIDGate(t *testing.T) {
	var userIDLookups int
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user_id") != "" {
			userIDLookups++
		}
		writeData(w, []map[string]interface{}{})
	})

	client := newTestClient(t, mux)

	client.ResolveArtist(context.Background(), "not-a-uuid")
	assert.Zero(t, userIDLookups, "non-UUID identifiers must never query by user_id")

	id := uuid.New().String()
	client.ResolveArtist(context.Background(), id)
	assert.Equal(t, 1, userIDLookups)
}

func TestResolveArtist_NothingMatches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artist-resolver", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]interface{}{})
	})

	client := newTestClient(t, mux)
	res := client.ResolveArtist(context.Background(), "nobody")

	assert.Equal(t, NotFound, res.Outcome)
}
