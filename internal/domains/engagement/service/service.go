package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/engagement/model"
	"artichoke-backend/internal/domains/engagement/repository"
)

type engagementService struct {
	repo repository.EngagementRepository
}

func NewEngagementService(repo repository.EngagementRepository) ServiceInterface {
	return &engagementService{repo: repo}
}

func (s *engagementService) Set(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID, on bool) error {
	if on {
		if err := s.repo.Add(ctx, kind, userID, artworkID); err != nil {
			return fmt.Errorf("set %s on: %w", kind, err)
		}
		return nil
	}
	if err := s.repo.Remove(ctx, kind, userID, artworkID); err != nil {
		return fmt.Errorf("set %s off: %w", kind, err)
	}
	return nil
}

func (s *engagementService) IDSet(ctx context.Context, kind model.Kind, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := s.repo.ListArtworkIDs(ctx, kind, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *engagementService) IDList(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.ListArtworkIDs(ctx, kind, userID)
}
