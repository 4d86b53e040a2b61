package repository

import (
	"context"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/artwork/model"
)

// ArtworkRepository is the data access contract for artworks and the
// artworks_with_username view.
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *model.Artwork) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artwork, error)

	// ListFeed returns public view rows, newest first.
	ListFeed(ctx context.Context) ([]model.FeedRow, error)
	// ListByUser returns a profile's artworks, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.FeedRow, error)
	// ListByIDs preserves the order of ids; missing ids are skipped.
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.FeedRow, error)
	// ListByField queries the view by one of the whitelisted lookup
	// fields (handle, username, user_id), newest first.
	ListByField(ctx context.Context, field, value string) ([]model.FeedRow, error)

	MarkVariantsReady(ctx context.Context, id uuid.UUID) error

	// ListImagePaths returns every stored original path; the orphan
	// purge job diffs these against the bucket contents.
	ListImagePaths(ctx context.Context) ([]string, error)
}
