package repository

import (
	"context"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/profile/model"
)

// ProfileRepository is the data access contract for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	// GetByHandle matches the handle column only.
	GetByHandle(ctx context.Context, handle string) (*model.Profile, error)
	// GetByAlias matches handle first, then username. Used by the artist
	// resolver so legacy identifiers still find the canonical profile.
	GetByAlias(ctx context.Context, alias string) (*model.Profile, error)
	// Update applies a partial update keyed by id and returns the new row.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.Profile, error)
	SetAvatar(ctx context.Context, id uuid.UUID, path string) error
}
