package repository

import (
	"context"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/engagement/model"
)

// EngagementRepository manages the likes and saves join tables.
type EngagementRepository interface {
	// Add inserts the (user, artwork) row; inserting an existing pair
	// is a no-op so repeated toggles stay idempotent.
	Add(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error
	// Remove deletes the row; removing a missing pair is a no-op.
	Remove(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error
	// ListArtworkIDs returns the user's engaged artwork ids for one
	// kind, newest engagement first.
	ListArtworkIDs(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error)
}
