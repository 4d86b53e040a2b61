package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artichoke-backend/internal/domains/engagement/model"
)

type fakeEngagementRepo struct {
	rows map[string]map[uuid.UUID][]uuid.UUID // kind -> user -> artwork ids
	err  error
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{rows: map[string]map[uuid.UUID][]uuid.UUID{}}
}

func (f *fakeEngagementRepo) Add(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if f.rows[string(kind)] == nil {
		f.rows[string(kind)] = map[uuid.UUID][]uuid.UUID{}
	}
	for _, id := range f.rows[string(kind)][userID] {
		if id == artworkID {
			return nil // idempotent
		}
	}
	f.rows[string(kind)][userID] = append(f.rows[string(kind)][userID], artworkID)
	return nil
}

func (f *fakeEngagementRepo) Remove(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	ids := f.rows[string(kind)][userID]
	for i, id := range ids {
		if id == artworkID {
			f.rows[string(kind)][userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEngagementRepo) ListArtworkIDs(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[string(kind)][userID], nil
}

func TestSet_InsertAndRemove(t *testing.T) {
	repo := newFakeEngagementRepo()
	svc := NewEngagementService(repo)
	userID, artworkID := uuid.New(), uuid.New()

	require.NoError(t, svc.Set(context.Background(), model.KindLike, userID, artworkID, true))

	set, err := svc.IDSet(context.Background(), model.KindLike, userID)
	require.NoError(t, err)
	assert.Contains(t, set, artworkID)

	require.NoError(t, svc.Set(context.Background(), model.KindLike, userID, artworkID, false))

	set, err = svc.IDSet(context.Background(), model.KindLike, userID)
	require.NoError(t, err)
	assert.NotContains(t, set, artworkID)
}

func TestSet_InsertIsIdempotent(t *testing.T) {
	repo := newFakeEngagementRepo()
	svc := NewEngagementService(repo)
	userID, artworkID := uuid.New(), uuid.New()

	require.NoError(t, svc.Set(context.Background(), model.KindSave, userID, artworkID, true))
	require.NoError(t, svc.Set(context.Background(), model.KindSave, userID, artworkID, true))

	ids, err := svc.IDList(context.Background(), model.KindSave, userID)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestSet_KindsAreIndependent(t *testing.T) {
	repo := newFakeEngagementRepo()
	svc := NewEngagementService(repo)
	userID, artworkID := uuid.New(), uuid.New()

	require.NoError(t, svc.Set(context.Background(), model.KindLike, userID, artworkID, true))

	saved, err := svc.IDSet(context.Background(), model.KindSave, userID)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSet_RepoErrorIsWrapped(t *testing.T) {
	repo := newFakeEngagementRepo()
	repo.err = errors.New("connection refused")
	svc := NewEngagementService(repo)

	err := svc.Set(context.Background(), model.KindLike, uuid.New(), uuid.New(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "like")
}

func TestKindTable(t *testing.T) {
	likeTable, err := model.KindLike.Table()
	require.NoError(t, err)
	assert.Equal(t, "likes", likeTable)

	saveTable, err := model.KindSave.Table()
	require.NoError(t, err)
	assert.Equal(t, "saves", saveTable)

	_, err = model.Kind("bookmark").Table()
	assert.Error(t, err)
}
