package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	artworkModel "artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/internal/domains/profile/model"
)

// ResolveArtist runs the lookup chain for a public artist identifier:
//
//  1. profile by handle, then by username (handle wins on conflict);
//     a hit returns the canonical profile plus its artworks, so callers
//     that arrived via a legacy username can redirect to the handle.
//  2. artworks whose view row carries the identifier as handle, then
//     username, then user_id when the identifier is shaped like a UUID.
//     A hit returns artworks with a nil profile.
//  3. otherwise the profile is simply not found.
//
// Later steps run only when every earlier step came up empty, never on
// infrastructure errors.
func (s *profileService) ResolveArtist(ctx context.Context, identifier string, viewer *uuid.UUID) (*ResolveResult, error) {
	profile, err := s.repo.GetByAlias(ctx, identifier)
	if err == nil {
		artworks, err := s.artworks.ListByUser(ctx, profile.ID, viewer)
		if err != nil {
			return nil, fmt.Errorf("list artist artworks: %w", err)
		}
		dto := profile.ToDTO(false)
		return &ResolveResult{Profile: &dto, Artworks: artworks}, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}

	fields := []string{artworkModel.LookupFieldHandle, artworkModel.LookupFieldUsername}
	if model.LooksLikeUUID(identifier) {
		fields = append(fields, artworkModel.LookupFieldUserID)
	}

	for _, field := range fields {
		artworks, err := s.artworks.ListByField(ctx, field, identifier, viewer)
		if err != nil {
			return nil, fmt.Errorf("lookup artworks by %s: %w", field, err)
		}
		if len(artworks) > 0 {
			log.Info().
				Str("identifier", identifier).
				Str("matched_field", field).
				Msg("Artist resolved via artworks only")
			return &ResolveResult{Profile: nil, Artworks: artworks}, nil
		}
	}

	return nil, model.NewProfileNotFoundError()
}
