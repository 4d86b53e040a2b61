package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"artichoke-backend/internal/domains/artwork/service"
)

// PurgeOrphansHandler removes bucket objects whose artwork row is gone.
// Scheduled nightly; a manual run is safe at any time.
type PurgeOrphansHandler struct {
	artworkService service.ServiceInterface
}

func NewPurgeOrphansHandler(artworkService service.ServiceInterface) *PurgeOrphansHandler {
	return &PurgeOrphansHandler{
		artworkService: artworkService,
	}
}

func (h *PurgeOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	log.Info().Msg("Starting orphan purge job")

	count, err := h.artworkService.PurgeOrphans(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Orphan purge failed")
		return fmt.Errorf("purge orphans: %w", err)
	}

	log.Info().Int("purged", count).Msg("Orphan purge completed")
	return nil
}
