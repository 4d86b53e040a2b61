package main

import (
	"github.com/hibiken/asynq"

	artworkJob "artichoke-backend/internal/domains/artwork/job"
	artworkModel "artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	processImage *artworkJob.ProcessImageHandler
	purgeOrphans *artworkJob.PurgeOrphansHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processImage: artworkJob.NewProcessImageHandler(c.ArtworkService),
		purgeOrphans: artworkJob.NewPurgeOrphansHandler(c.ArtworkService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(artworkModel.TaskProcessImage, h.processImage.ProcessTask)
	mux.HandleFunc(artworkModel.TaskPurgeOrphans, h.purgeOrphans.ProcessTask)
}
