package model

import "github.com/google/uuid"

// Asynq task types for the artwork domain.
const (
	TaskProcessImage = "artwork:process_image"
	TaskPurgeOrphans = "artwork:purge_orphans"
)

// ProcessImagePayload asks the worker to build resized variants.
type ProcessImagePayload struct {
	ArtworkID uuid.UUID `json:"artwork_id"`
}

// PurgeOrphansPayload is empty; the scheduled job scans storage
// against the artworks table on its own.
type PurgeOrphansPayload struct{}
