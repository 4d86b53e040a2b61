package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"artichoke-backend/internal/config"
	infraCache "artichoke-backend/internal/infrastructure/cache"
	"artichoke-backend/internal/infrastructure/database"
	"artichoke-backend/internal/infrastructure/queue"
	"artichoke-backend/internal/infrastructure/storage"
	"artichoke-backend/pkg/cache"
	"artichoke-backend/pkg/jwt"

	artworkHandler "artichoke-backend/internal/domains/artwork/handler"
	artworkRepo "artichoke-backend/internal/domains/artwork/repository"
	artworkService "artichoke-backend/internal/domains/artwork/service"
	engagementHandler "artichoke-backend/internal/domains/engagement/handler"
	engagementRepo "artichoke-backend/internal/domains/engagement/repository"
	engagementService "artichoke-backend/internal/domains/engagement/service"
	profileHandler "artichoke-backend/internal/domains/profile/handler"
	profileRepo "artichoke-backend/internal/domains/profile/repository"
	profileService "artichoke-backend/internal/domains/profile/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	// Infrastructure
	Config         *config.Config
	DB             *database.PostgresDB
	Cache          cache.Cache
	Storage        *storage.MinIOStorage
	ImageProcessor *storage.ImageProcessor
	JWTManager     *jwt.Manager
	Queue          queue.Enqueuer

	// Repositories
	ProfileRepo    profileRepo.ProfileRepository
	ArtworkRepo    artworkRepo.ArtworkRepository
	EngagementRepo engagementRepo.EngagementRepository

	// Services
	ProfileService    profileService.ProfileService
	ArtworkService    artworkService.ServiceInterface
	EngagementService engagementService.ServiceInterface

	// Handlers
	ProfileHandler    *profileHandler.ProfileHandler
	ArtworkHandler    *artworkHandler.ArtworkHandler
	EngagementHandler *engagementHandler.EngagementHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the whole graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	// Step 3: cache. A dead Redis degrades signed-url caching and task
	// enqueueing but the API still serves.
	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, background tasks disabled")
		c.Queue = queue.NopEnqueuer{}
	} else {
		c.Queue = queue.NewClient(cfg.Redis.Host)
		log.Info().Msg("Redis connected")
	}

	// Step 4: object storage
	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio: %w", err)
	}
	c.ImageProcessor = storage.NewImageProcessor(cfg.Upload.MaxFileSizeMB)
	log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("MinIO ready")

	// Step 5: auth
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Step 6: repositories
	c.ProfileRepo = profileRepo.NewPostgresProfileRepository(c.DB.Pool)
	c.ArtworkRepo = artworkRepo.NewPostgresArtworkRepository(c.DB.Pool)
	c.EngagementRepo = engagementRepo.NewPostgresEngagementRepository(c.DB.Pool)

	// Step 7: services
	c.EngagementService = engagementService.NewEngagementService(c.EngagementRepo)
	c.ArtworkService = artworkService.NewArtworkService(
		c.ArtworkRepo,
		c.ProfileRepo,
		c.EngagementService,
		c.Storage,
		c.ImageProcessor,
		c.Cache,
		c.Queue,
		cfg.Upload,
	)
	c.ProfileService = profileService.NewProfileService(
		c.ProfileRepo,
		c.ArtworkService,
		c.JWTManager,
		c.Storage,
		c.ImageProcessor,
	)

	// Step 8: handlers
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService, cfg.Upload)
	c.ArtworkHandler = artworkHandler.NewArtworkHandler(c.ArtworkService, cfg.Upload)
	c.EngagementHandler = engagementHandler.NewEngagementHandler(c.EngagementService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close queue client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("Container cleaned up")
}
