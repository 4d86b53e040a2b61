package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/internal/domains/artwork/service"
)

// ProcessImageHandler builds resized variants for a freshly uploaded
// artwork image.
type ProcessImageHandler struct {
	artworkService service.ServiceInterface
}

func NewProcessImageHandler(artworkService service.ServiceInterface) *ProcessImageHandler {
	return &ProcessImageHandler{
		artworkService: artworkService,
	}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ProcessImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessImage payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("artwork_id", payload.ArtworkID.String()).
		Msg("Processing artwork image variants")

	if err := h.artworkService.ProcessVariants(ctx, payload.ArtworkID); err != nil {
		log.Error().
			Err(err).
			Str("artwork_id", payload.ArtworkID.String()).
			Msg("Failed to process artwork image")
		return fmt.Errorf("process variants: %w", err)
	}

	log.Info().
		Str("artwork_id", payload.ArtworkID.String()).
		Msg("Artwork image processed successfully")

	return nil
}
