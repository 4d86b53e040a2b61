package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Kind selects which engagement set a toggle operates on.
type Kind string

const (
	KindLike Kind = "like"
	KindSave Kind = "save"
)

// Toggler keeps the local liked/saved id-sets and flips them
// optimistically: membership changes before the network call, and a
// failed call re-flips it. Errors are logged, never surfaced. There is
// no debouncing or queueing; the last successful call wins.
type Toggler struct {
	client *Client

	mu   sync.Mutex
	sets map[Kind]map[uuid.UUID]struct{}
}

// NewToggler seeds a toggler from the server's id-sets.
func (c *Client) NewToggler(liked, saved []uuid.UUID) *Toggler {
	t := &Toggler{
		client: c,
		sets: map[Kind]map[uuid.UUID]struct{}{
			KindLike: make(map[uuid.UUID]struct{}, len(liked)),
			KindSave: make(map[uuid.UUID]struct{}, len(saved)),
		},
	}
	for _, id := range liked {
		t.sets[KindLike][id] = struct{}{}
	}
	for _, id := range saved {
		t.sets[KindSave][id] = struct{}{}
	}
	return t
}

// Has reports local membership.
func (t *Toggler) Has(kind Kind, artworkID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sets[kind][artworkID]
	return ok
}

// IDs returns the local id-set for a kind.
func (t *Toggler) IDs(kind Kind) []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(t.sets[kind]))
	for id := range t.sets[kind] {
		ids = append(ids, id)
	}
	return ids
}

// Toggle flips membership for (kind, artworkID) and returns the new
// local state. Without a session it is a no-op. The local flip happens
// before the request; a transport or server failure rolls it back.
func (t *Toggler) Toggle(ctx context.Context, kind Kind, artworkID uuid.UUID) bool {
	if _, ok := t.client.CurrentSession(); !ok {
		return t.Has(kind, artworkID)
	}

	on := t.flip(kind, artworkID)

	method := "POST"
	if !on {
		method = "DELETE"
	}
	path := fmt.Sprintf("/artworks/%s/%s", artworkID, kind)

	if err := t.client.call(ctx, method, path, nil, nil, nil); err != nil {
		t.client.log.Warn().
			Err(err).
			Str("kind", string(kind)).
			Str("artwork_id", artworkID.String()).
			Msg("Toggle failed, rolling back")
		t.flip(kind, artworkID)
		return t.Has(kind, artworkID)
	}

	return on
}

// flip inverts membership and returns the new state.
func (t *Toggler) flip(kind Kind, artworkID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.sets[kind][artworkID]; ok {
		delete(t.sets[kind], artworkID)
		return false
	}
	t.sets[kind][artworkID] = struct{}{}
	return true
}
