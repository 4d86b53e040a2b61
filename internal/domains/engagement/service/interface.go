package service

import (
	"context"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/engagement/model"
)

// ServiceInterface is the business contract for likes and saves.
type ServiceInterface interface {
	// Set makes the (user, artwork) membership equal to on. Both
	// directions are idempotent: the client toggles optimistically and
	// may repeat itself when requests race.
	Set(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID, on bool) error
	// IDSet returns the user's engaged artwork ids as a set.
	IDSet(ctx context.Context, kind model.Kind, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
	// IDList returns the same ids ordered newest engagement first.
	IDList(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error)
}
