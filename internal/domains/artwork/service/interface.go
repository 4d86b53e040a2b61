package service

import (
	"context"

	"github.com/google/uuid"

	"artichoke-backend/internal/domains/artwork/model"
	engagementModel "artichoke-backend/internal/domains/engagement/model"
)

// ServiceInterface is the business contract for artworks.
type ServiceInterface interface {
	// ListFeed returns public artworks newest first. When viewer is
	// non-nil the liked/saved flags reflect that user's id-sets.
	ListFeed(ctx context.Context, viewer *uuid.UUID) ([]model.FeedArtwork, error)
	// ListByUser returns one profile's artworks, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, viewer *uuid.UUID) ([]model.FeedArtwork, error)
	// ListEngaged returns the artworks the user liked or saved, newest
	// engagement first.
	ListEngaged(ctx context.Context, kind engagementModel.Kind, userID uuid.UUID) ([]model.FeedArtwork, error)
	// ListByField queries the view by a whitelisted lookup field.
	ListByField(ctx context.Context, field, value string, viewer *uuid.UUID) ([]model.FeedArtwork, error)

	// Upload validates and stores the image, inserts the row, and
	// enqueues variant processing.
	Upload(ctx context.Context, userID uuid.UUID, req model.UploadRequest, data []byte) (*model.Artwork, error)

	// SignedURL issues (and caches) a presigned link for a stored path.
	SignedURL(ctx context.Context, path string) (string, error)
	// DownloadImage fetches the object bytes and a sniffed content type.
	DownloadImage(ctx context.Context, path string) ([]byte, string, error)

	// ProcessVariants builds resized variants; called by the worker.
	ProcessVariants(ctx context.Context, artworkID uuid.UUID) error
	// PurgeOrphans removes bucket objects with no owning artwork row.
	PurgeOrphans(ctx context.Context) (int, error)

	// Export renders artwork metadata as an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
}
