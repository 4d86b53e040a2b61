package gallery

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_FlipsBeforeNetworkResolves(t *testing.T) {
	release := make(chan struct{})
	requested := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/", func(w http.ResponseWriter, r *http.Request) {
		close(requested)
		<-release
		writeData(w, map[string]bool{"like": true})
	})

	client := newTestClient(t, mux)
	loggedIn(client)
	toggler := client.NewToggler(nil, nil)
	artworkID := uuid.New()

	done := make(chan bool)
	go func() {
		done <- toggler.Toggle(context.Background(), KindLike, artworkID)
	}()

	// Membership must already be flipped while the request is in flight.
	<-requested
	assert.True(t, toggler.Has(KindLike, artworkID))

	close(release)
	assert.True(t, <-done)
	assert.True(t, toggler.Has(KindLike, artworkID))
}

func TestToggle_RollsBackOnServerFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
	})

	client := newTestClient(t, mux)
	loggedIn(client)

	seeded := uuid.New()
	toggler := client.NewToggler([]uuid.UUID{seeded}, nil)
	fresh := uuid.New()

	// Adding a fresh id fails: membership must return to absent.
	assert.False(t, toggler.Toggle(context.Background(), KindLike, fresh))
	assert.False(t, toggler.Has(KindLike, fresh))

	// Removing a seeded id fails: membership must return to present.
	assert.True(t, toggler.Toggle(context.Background(), KindLike, seeded))
	assert.True(t, toggler.Has(KindLike, seeded))
}

func TestToggle_MethodAndPathPerDirection(t *testing.T) {
	var methods []string
	var paths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks/", func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		paths = append(paths, r.URL.Path)
		writeData(w, nil)
	})

	client := newTestClient(t, mux)
	loggedIn(client)
	toggler := client.NewToggler(nil, nil)
	artworkID := uuid.New()

	toggler.Toggle(context.Background(), KindSave, artworkID) // absent -> insert
	toggler.Toggle(context.Background(), KindSave, artworkID) // present -> delete

	require.Len(t, methods, 2)
	assert.Equal(t, "POST", methods[0])
	assert.Equal(t, "DELETE", methods[1])
	assert.True(t, strings.HasSuffix(paths[0], "/save"))
}

func TestToggle_NoOpWithoutSession(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeData(w, nil)
	})

	client := newTestClient(t, mux)
	toggler := client.NewToggler(nil, nil)
	artworkID := uuid.New()

	assert.False(t, toggler.Toggle(context.Background(), KindLike, artworkID))
	assert.False(t, toggler.Has(KindLike, artworkID))
	assert.False(t, called, "no request may be made without a session")
}

// End-to-end: load the feed, like an artwork, then hit a failure on the
// second toggle and verify the rollback restores the liked state.
func TestFeedLikeScenario(t *testing.T) {
	artworkID := uuid.New()
	artistID := uuid.New()
	failNext := false

	mux := http.NewServeMux()
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]interface{}{{
			"id":       artworkID.String(),
			"user_id":  artistID.String(),
			"title":    "Dusk",
			"tags":     []string{},
			"username": "jane",
		}})
	})
	mux.HandleFunc("/artworks/", func(w http.ResponseWriter, r *http.Request) {
		if failNext {
			writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom")
			return
		}
		writeData(w, nil)
	})

	client := newTestClient(t, mux)
	loggedIn(client)

	feed, err := client.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 1)

	toggler := client.NewToggler(nil, nil)

	// Like succeeds.
	assert.True(t, toggler.Toggle(context.Background(), KindLike, feed[0].ID))
	assert.True(t, toggler.Has(KindLike, feed[0].ID))

	// Unlike fails on the server: the like must survive.
	failNext = true
	assert.True(t, toggler.Toggle(context.Background(), KindLike, feed[0].ID))
	assert.True(t, toggler.Has(KindLike, feed[0].ID))
}
