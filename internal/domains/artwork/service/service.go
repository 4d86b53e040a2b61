package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"artichoke-backend/internal/config"
	"artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/internal/domains/artwork/repository"
	engagementModel "artichoke-backend/internal/domains/engagement/model"
	engagementService "artichoke-backend/internal/domains/engagement/service"
	profileRepo "artichoke-backend/internal/domains/profile/repository"
	"artichoke-backend/internal/infrastructure/queue"
	"artichoke-backend/internal/infrastructure/storage"
	"artichoke-backend/pkg/cache"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type artworkService struct {
	repo        repository.ArtworkRepository
	profiles    profileRepo.ProfileRepository
	engagements engagementService.ServiceInterface
	storage     *storage.MinIOStorage
	processor   *storage.ImageProcessor
	cache       cache.Cache
	enqueuer    queue.Enqueuer
	cfg         config.UploadConfig
}

func NewArtworkService(
	repo repository.ArtworkRepository,
	profiles profileRepo.ProfileRepository,
	engagements engagementService.ServiceInterface,
	minioStorage *storage.MinIOStorage,
	processor *storage.ImageProcessor,
	c cache.Cache,
	enqueuer queue.Enqueuer,
	cfg config.UploadConfig,
) ServiceInterface {
	return &artworkService{
		repo:        repo,
		profiles:    profiles,
		engagements: engagements,
		storage:     minioStorage,
		processor:   processor,
		cache:       c,
		enqueuer:    enqueuer,
		cfg:         cfg,
	}
}

// =====================================================
// LISTS
// =====================================================

// flagSets loads the viewer's liked/saved id-sets; an anonymous viewer
// gets empty sets so every flag renders false.
func (s *artworkService) flagSets(ctx context.Context, viewer *uuid.UUID) (liked, saved map[uuid.UUID]struct{}) {
	liked = map[uuid.UUID]struct{}{}
	saved = map[uuid.UUID]struct{}{}
	if viewer == nil {
		return liked, saved
	}

	var err error
	if liked, err = s.engagements.IDSet(ctx, engagementModel.KindLike, *viewer); err != nil {
		log.Warn().Err(err).Str("user_id", viewer.String()).Msg("Failed to load liked set")
		liked = map[uuid.UUID]struct{}{}
	}
	if saved, err = s.engagements.IDSet(ctx, engagementModel.KindSave, *viewer); err != nil {
		log.Warn().Err(err).Str("user_id", viewer.String()).Msg("Failed to load saved set")
		saved = map[uuid.UUID]struct{}{}
	}
	return liked, saved
}

func (s *artworkService) project(ctx context.Context, rows []model.FeedRow, viewer *uuid.UUID) []model.FeedArtwork {
	liked, saved := s.flagSets(ctx, viewer)

	out := make([]model.FeedArtwork, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ToFeedArtwork(row, liked, saved))
	}
	return out
}

func (s *artworkService) ListFeed(ctx context.Context, viewer *uuid.UUID) ([]model.FeedArtwork, error) {
	rows, err := s.repo.ListFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	return s.project(ctx, rows, viewer), nil
}

func (s *artworkService) ListByUser(ctx context.Context, userID uuid.UUID, viewer *uuid.UUID) ([]model.FeedArtwork, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list by user: %w", err)
	}
	return s.project(ctx, rows, viewer), nil
}

func (s *artworkService) ListEngaged(ctx context.Context, kind engagementModel.Kind, userID uuid.UUID) ([]model.FeedArtwork, error) {
	ids, err := s.engagements.IDList(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", kind, err)
	}

	rows, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list engaged artworks: %w", err)
	}
	return s.project(ctx, rows, &userID), nil
}

func (s *artworkService) ListByField(ctx context.Context, field, value string, viewer *uuid.UUID) ([]model.FeedArtwork, error) {
	rows, err := s.repo.ListByField(ctx, field, value)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, rows, viewer), nil
}

// =====================================================
// UPLOAD
// =====================================================

func (s *artworkService) Upload(ctx context.Context, userID uuid.UUID, req model.UploadRequest, data []byte) (*model.Artwork, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Only creator accounts may upload.
	owner, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load uploader profile: %w", err)
	}
	if !owner.IsCreator() {
		return nil, model.NewNotCreatorError()
	}

	if err := s.processor.ValidateImage(data); err != nil {
		return nil, model.NewInvalidImageError(err)
	}

	artworkID := uuid.New()
	ext := "jpg"
	if ct := http.DetectContentType(data); ct == "image/png" {
		ext = "png"
	}
	key := fmt.Sprintf("artworks/%s/original.%s", artworkID, ext)

	if _, err := s.storage.Upload(ctx, key, data, fmt.Sprintf("image/%s", strings.Replace(ext, "jpg", "jpeg", 1))); err != nil {
		return nil, fmt.Errorf("store artwork image: %w", err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	var description *string
	if req.Description != "" {
		description = &req.Description
	}

	artwork := &model.Artwork{
		ID:          artworkID,
		UserID:      userID,
		Title:       req.Title,
		Description: description,
		ImageURL:    key,
		Tags:        tags,
		IsPublic:    isPublic,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, artwork); err != nil {
		// Keep storage consistent with the table.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to clean up object after insert failure")
		}
		return nil, fmt.Errorf("create artwork: %w", err)
	}

	// Variant processing is best-effort; the original is already served.
	if err := s.enqueuer.EnqueueProcessImage(ctx, artworkID); err != nil {
		log.Warn().Err(err).Str("artwork_id", artworkID.String()).Msg("Failed to enqueue image processing")
	}

	return artwork, nil
}

// =====================================================
// IMAGE ACCESS
// =====================================================

func (s *artworkService) SignedURL(ctx context.Context, imagePath string) (string, error) {
	cacheKey := "signedurl:" + imagePath

	var cached string
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	ttl := time.Duration(s.cfg.SignedURLTTL) * time.Second
	url, err := s.storage.SignedURL(ctx, imagePath, ttl)
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", imagePath, err)
	}

	// Cache for half the link lifetime so a cached link is never close
	// to expiry when handed out.
	if err := s.cache.Set(ctx, cacheKey, url, ttl/2); err != nil {
		log.Warn().Err(err).Str("path", imagePath).Msg("Failed to cache signed URL")
	}

	return url, nil
}

func (s *artworkService) DownloadImage(ctx context.Context, imagePath string) ([]byte, string, error) {
	data, err := s.storage.Download(ctx, imagePath)
	if err != nil {
		return nil, "", model.ErrObjectNotFound
	}
	return data, http.DetectContentType(data), nil
}

// =====================================================
// WORKER OPERATIONS
// =====================================================

func (s *artworkService) ProcessVariants(ctx context.Context, artworkID uuid.UUID) error {
	artwork, err := s.repo.GetByID(ctx, artworkID)
	if err != nil {
		return fmt.Errorf("get artwork: %w", err)
	}

	data, err := s.storage.Download(ctx, artwork.ImageURL)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	dir := path.Dir(artwork.ImageURL)
	for name, variantData := range variants {
		key := fmt.Sprintf("%s/%s.jpg", dir, name)
		if _, err := s.storage.Upload(ctx, key, variantData, "image/jpeg"); err != nil {
			return fmt.Errorf("upload %s variant: %w", name, err)
		}
	}

	if err := s.repo.MarkVariantsReady(ctx, artworkID); err != nil {
		return fmt.Errorf("mark variants ready: %w", err)
	}

	return nil
}

func (s *artworkService) PurgeOrphans(ctx context.Context) (int, error) {
	paths, err := s.repo.ListImagePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("list image paths: %w", err)
	}

	// Every object under artworks/<id>/ belongs to the row owning the
	// original, so tracking the directory of each original is enough.
	owned := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		owned[path.Dir(p)] = struct{}{}
	}

	keys, err := s.storage.ListKeys(ctx, "artworks/")
	if err != nil {
		return 0, fmt.Errorf("list bucket keys: %w", err)
	}

	var orphans []string
	for _, key := range keys {
		if _, ok := owned[path.Dir(key)]; !ok {
			orphans = append(orphans, key)
		}
	}

	if len(orphans) == 0 {
		return 0, nil
	}
	if err := s.storage.RemoveObjects(ctx, orphans); err != nil {
		return 0, fmt.Errorf("remove orphans: %w", err)
	}

	log.Info().Int("count", len(orphans)).Msg("Purged orphan storage objects")
	return len(orphans), nil
}

// =====================================================
// EXPORT
// =====================================================

func (s *artworkService) Export(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ListFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artworks for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Artworks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"ID", "Title", "Artist", "Handle", "Tags", "Storage Path", "Public", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range rows {
		username := ""
		if row.Username != nil {
			username = *row.Username
		}
		handle := ""
		if row.Handle != nil {
			handle = *row.Handle
		}

		values := []interface{}{
			row.ID.String(),
			row.Title,
			username,
			handle,
			strings.Join(row.Tags, ", "),
			row.ImageURL,
			row.IsPublic,
			row.CreatedAt.Format(time.RFC3339),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
