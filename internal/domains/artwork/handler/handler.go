package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artichoke-backend/internal/config"
	"artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/internal/domains/artwork/service"
	engagementModel "artichoke-backend/internal/domains/engagement/model"
	"artichoke-backend/internal/shared/middleware"
	"artichoke-backend/internal/shared/response"
)

// =====================================================
// ARTWORK HANDLER
// =====================================================

type ArtworkHandler struct {
	service   service.ServiceInterface
	uploadCfg config.UploadConfig
}

func NewArtworkHandler(service service.ServiceInterface, uploadCfg config.UploadConfig) *ArtworkHandler {
	return &ArtworkHandler{service: service, uploadCfg: uploadCfg}
}

// viewer returns the authenticated user ID if present. Routes behind
// OptionalAuth use this to decide whether engagement flags apply.
func viewer(c *gin.Context) *uuid.UUID {
	if userID, ok := middleware.UserID(c); ok {
		return &userID
	}
	return nil
}

// List handles GET /artworks. Without filters it returns the public
// feed; user_id, handle and username narrow it to one owner.
func (h *ArtworkHandler) List(c *gin.Context) {
	v := viewer(c)

	var (
		artworks []model.FeedArtwork
		err      error
	)
	switch {
	case c.Query("user_id") != "":
		artworks, err = h.service.ListByField(c.Request.Context(), model.LookupFieldUserID, c.Query("user_id"), v)
	case c.Query("handle") != "":
		artworks, err = h.service.ListByField(c.Request.Context(), model.LookupFieldHandle, c.Query("handle"), v)
	case c.Query("username") != "":
		artworks, err = h.service.ListByField(c.Request.Context(), model.LookupFieldUsername, c.Query("username"), v)
	default:
		artworks, err = h.service.ListFeed(c.Request.Context(), v)
	}
	if err != nil {
		response.InternalServerError(c, "Failed to load artworks")
		return
	}

	response.Success(c, http.StatusOK, artworks)
}

// Upload handles POST /upload (multipart: title, description, tags, file).
func (h *ArtworkHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	var req model.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return
	}
	// Tags may arrive as one comma-separated field.
	if len(req.Tags) == 1 && strings.Contains(req.Tags[0], ",") {
		parts := strings.Split(req.Tags[0], ",")
		req.Tags = req.Tags[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				req.Tags = append(req.Tags, p)
			}
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Artwork file is required")
		return
	}
	maxBytes := int64(h.uploadCfg.MaxFileSizeMB) << 20
	if fileHeader.Size > maxBytes {
		response.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}
	if int64(len(data)) > maxBytes {
		response.BadRequest(c, "File too large")
		return
	}

	artwork, err := h.service.Upload(c.Request.Context(), userID, req, data)
	if err != nil {
		var artErr *model.ArtworkError
		switch {
		case errors.As(err, &artErr) && artErr.Code == model.ErrCodeNotCreator:
			response.ErrorResponse(c, http.StatusForbidden, artErr.Code, artErr.Message)
		case errors.As(err, &artErr) && artErr.Code == model.ErrCodeInvalidImage:
			response.ErrorResponse(c, http.StatusBadRequest, artErr.Code, artErr.Message)
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, artwork)
}

// SignedURL handles GET /signed-url?path=...
func (h *ArtworkHandler) SignedURL(c *gin.Context) {
	imagePath := c.Query("path")
	if imagePath == "" {
		response.BadRequest(c, "path query parameter is required")
		return
	}

	url, err := h.service.SignedURL(c.Request.Context(), imagePath)
	if err != nil {
		response.NotFound(c, "Object not found")
		return
	}

	response.Success(c, http.StatusOK, model.SignedURLResponse{
		SignedURL: url,
		Legacy:    url,
	})
}

// Image handles GET /artworks/image?path=... and streams the object to
// authenticated callers.
func (h *ArtworkHandler) Image(c *gin.Context) {
	if _, ok := middleware.UserID(c); !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	imagePath := c.Query("path")
	if imagePath == "" {
		response.BadRequest(c, "path query parameter is required")
		return
	}

	data, contentType, err := h.service.DownloadImage(c.Request.Context(), imagePath)
	if err != nil {
		response.NotFound(c, "Object not found")
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// MyArtworks handles GET /me/artworks.
func (h *ArtworkHandler) MyArtworks(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	artworks, err := h.service.ListByUser(c.Request.Context(), userID, &userID)
	if err != nil {
		response.InternalServerError(c, "Failed to load artworks")
		return
	}

	response.Success(c, http.StatusOK, artworks)
}

func (h *ArtworkHandler) listEngaged(c *gin.Context, kind engagementModel.Kind) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	artworks, err := h.service.ListEngaged(c.Request.Context(), kind, userID)
	if err != nil {
		response.InternalServerError(c, "Failed to load artworks")
		return
	}

	response.Success(c, http.StatusOK, artworks)
}

// LikedArtworks handles GET /me/liked-artworks.
func (h *ArtworkHandler) LikedArtworks(c *gin.Context) {
	h.listEngaged(c, engagementModel.KindLike)
}

// SavedArtworks handles GET /me/saved-artworks.
func (h *ArtworkHandler) SavedArtworks(c *gin.Context) {
	h.listEngaged(c, engagementModel.KindSave)
}

// Export handles GET /artworks/export and returns an xlsx download.
func (h *ArtworkHandler) Export(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to export artworks")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="artworks.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
