package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	artworkModel "artichoke-backend/internal/domains/artwork/model"
	engagementModel "artichoke-backend/internal/domains/engagement/model"
	"artichoke-backend/internal/domains/profile/model"
	"artichoke-backend/internal/domains/profile/repository"
)

// ---- fakes ----

type fakeProfileRepo struct {
	repository.ProfileRepository
	byAlias map[string]*model.Profile
}

func (f *fakeProfileRepo) GetByAlias(ctx context.Context, alias string) (*model.Profile, error) {
	if p, ok := f.byAlias[alias]; ok {
		return p, nil
	}
	return nil, model.ErrProfileNotFound
}

type fakeArtworkService struct {
	byUser   map[uuid.UUID][]artworkModel.FeedArtwork
	byField  map[string][]artworkModel.FeedArtwork // key: field + "/" + value
	fieldErr error
}

func (f *fakeArtworkService) ListByUser(ctx context.Context, userID uuid.UUID, viewer *uuid.UUID) ([]artworkModel.FeedArtwork, error) {
	return f.byUser[userID], nil
}

func (f *fakeArtworkService) ListByField(ctx context.Context, field, value string, viewer *uuid.UUID) ([]artworkModel.FeedArtwork, error) {
	if f.fieldErr != nil {
		return nil, f.fieldErr
	}
	return f.byField[field+"/"+value], nil
}

func (f *fakeArtworkService) ListFeed(ctx context.Context, viewer *uuid.UUID) ([]artworkModel.FeedArtwork, error) {
	return nil, nil
}

func (f *fakeArtworkService) ListEngaged(ctx context.Context, kind engagementModel.Kind, userID uuid.UUID) ([]artworkModel.FeedArtwork, error) {
	return nil, nil
}

func (f *fakeArtworkService) Upload(ctx context.Context, userID uuid.UUID, req artworkModel.UploadRequest, data []byte) (*artworkModel.Artwork, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeArtworkService) SignedURL(ctx context.Context, path string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeArtworkService) DownloadImage(ctx context.Context, path string) ([]byte, string, error) {
	return nil, "", errors.New("not implemented")
}

func (f *fakeArtworkService) ProcessVariants(ctx context.Context, artworkID uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeArtworkService) PurgeOrphans(ctx context.Context) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeArtworkService) Export(ctx context.Context) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func newResolverService(repo *fakeProfileRepo, artworks *fakeArtworkService) *profileService {
	return &profileService{repo: repo, artworks: artworks}
}

func strPtr(s string) *string { return &s }

// ---- tests ----

func TestResolveArtist_ProfileByHandle(t *testing.T) {
	artistID := uuid.New()
	handle := "jane.doe"
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{
		handle: {ID: artistID, Username: "Jane", Handle: strPtr(handle), Role: model.RoleCreator},
	}}
	artworks := &fakeArtworkService{byUser: map[uuid.UUID][]artworkModel.FeedArtwork{
		artistID: {{ID: uuid.New(), UserID: artistID, Title: "Dusk"}},
	}}

	result, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), handle, nil)
	require.NoError(t, err)
	require.NotNil(t, result.Profile)
	assert.Equal(t, artistID, result.Profile.ID)
	assert.Len(t, result.Artworks, 1)
	assert.Empty(t, result.Profile.Email, "public resolution must not leak email")
}

func TestResolveArtist_LegacyUsernameFindsCanonicalProfile(t *testing.T) {
	artistID := uuid.New()
	// GetByAlias matches username too, so an old /artist/Jane link still
	// lands on the canonical profile carrying the new handle.
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{
		"Jane": {ID: artistID, Username: "Jane", Handle: strPtr("jane.doe"), Role: model.RoleCreator},
	}}
	artworks := &fakeArtworkService{}

	result, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), "Jane", nil)
	require.NoError(t, err)
	require.NotNil(t, result.Profile)
	require.NotNil(t, result.Profile.Handle)
	assert.Equal(t, "jane.doe", *result.Profile.Handle)
}

func TestResolveArtist_FallsBackToArtworksByUsername(t *testing.T) {
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{}}
	artworks := &fakeArtworkService{byField: map[string][]artworkModel.FeedArtwork{
		artworkModel.LookupFieldUsername + "/ghost": {{ID: uuid.New(), Title: "Left Behind"}},
	}}

	result, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), "ghost", nil)
	require.NoError(t, err)
	assert.Nil(t, result.Profile)
	assert.Len(t, result.Artworks, 1)
}

func TestResolveArtist_UUIDIdentifierTriesUserID(t *testing.T) {
	artistID := uuid.New()
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{}}
	artworks := &fakeArtworkService{byField: map[string][]artworkModel.FeedArtwork{
		artworkModel.LookupFieldUserID + "/" + artistID.String(): {{ID: uuid.New(), UserID: artistID}},
	}}

	result, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), artistID.String(), nil)
	require.NoError(t, err)
	assert.Nil(t, result.Profile)
	assert.Len(t, result.Artworks, 1)
}

func TestResolveArtist_NonUUIDNeverTriesUserID(t *testing.T) {
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{}}
	artworks := &fakeArtworkService{byField: map[string][]artworkModel.FeedArtwork{
		artworkModel.LookupFieldUserID + "/not-a-uuid": {{ID: uuid.New()}},
	}}

	_, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), "not-a-uuid", nil)
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestResolveArtist_NotFound(t *testing.T) {
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{}}
	artworks := &fakeArtworkService{}

	_, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), "nobody", nil)

	var profileErr *model.ProfileError
	require.ErrorAs(t, err, &profileErr)
	assert.Equal(t, model.ErrCodeProfileNotFound, profileErr.Code)
}

func TestResolveArtist_InfrastructureErrorStopsChain(t *testing.T) {
	repo := &fakeProfileRepo{byAlias: map[string]*model.Profile{}}
	artworks := &fakeArtworkService{fieldErr: errors.New("connection refused")}

	_, err := newResolverService(repo, artworks).ResolveArtist(context.Background(), "anyone", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrProfileNotFound)
}
