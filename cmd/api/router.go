package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artichoke-backend/internal/shared/middleware"
	"artichoke-backend/internal/shared/response"
	"artichoke-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)
	optionalAuth := middleware.OptionalAuth(c.JWTManager)

	// Health check
	router.GET("/status", statusHandler(c))

	setupAuthRoutes(router, c)
	setupProfileRoutes(router, c, auth, optionalAuth)
	setupArtworkRoutes(router, c, auth, optionalAuth)
	setupEngagementRoutes(router, c, auth)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", c.ProfileHandler.Register)
		authGroup.POST("/login", c.ProfileHandler.Login)
		authGroup.POST("/refresh", c.ProfileHandler.Refresh)
	}
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(router *gin.Engine, c *container.Container, auth, optionalAuth gin.HandlerFunc) {
	profiles := router.Group("/profiles")
	profiles.Use(auth)
	{
		profiles.GET("/me", c.ProfileHandler.GetMe)
		profiles.PUT("/me", c.ProfileHandler.UpdateMe)
		profiles.PATCH("/me", c.ProfileHandler.UpdateMe)
	}

	router.POST("/upload-avatar", auth, c.ProfileHandler.UploadAvatar)

	// Public artist page resolution; auth only affects engagement flags.
	router.GET("/artist-resolver", optionalAuth, c.ProfileHandler.ResolveArtist)
}

// ========================================
// ARTWORK ROUTES
// ========================================
func setupArtworkRoutes(router *gin.Engine, c *container.Container, auth, optionalAuth gin.HandlerFunc) {
	router.GET("/artworks", optionalAuth, c.ArtworkHandler.List)
	router.GET("/artworks/image", auth, c.ArtworkHandler.Image)
	router.GET("/artworks/export", auth, c.ArtworkHandler.Export)
	router.GET("/signed-url", c.ArtworkHandler.SignedURL)
	router.POST("/upload", auth, c.ArtworkHandler.Upload)

	me := router.Group("/me")
	me.Use(auth)
	{
		me.GET("/artworks", c.ArtworkHandler.MyArtworks)
		me.GET("/liked-artworks", c.ArtworkHandler.LikedArtworks)
		me.GET("/saved-artworks", c.ArtworkHandler.SavedArtworks)
	}
}

// ========================================
// ENGAGEMENT ROUTES
// ========================================
func setupEngagementRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	artworks := router.Group("/artworks/:id")
	artworks.Use(auth)
	{
		artworks.POST("/like", c.EngagementHandler.Like)
		artworks.DELETE("/like", c.EngagementHandler.Unlike)
		artworks.POST("/save", c.EngagementHandler.Save)
		artworks.DELETE("/save", c.EngagementHandler.Unsave)
	}

	me := router.Group("/me")
	me.Use(auth)
	{
		me.GET("/likes", c.EngagementHandler.Likes)
		me.GET("/saves", c.EngagementHandler.Saves)
	}
}

// ========================================
// STATUS
// ========================================
func statusHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}
		cacheStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
