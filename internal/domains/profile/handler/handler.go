package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artichoke-backend/internal/config"
	"artichoke-backend/internal/domains/profile/model"
	"artichoke-backend/internal/domains/profile/service"
	"artichoke-backend/internal/shared/middleware"
	"artichoke-backend/internal/shared/response"
)

// =====================================================
// PROFILE HANDLER
// =====================================================

type ProfileHandler struct {
	service   service.ProfileService
	uploadCfg config.UploadConfig
}

func NewProfileHandler(service service.ProfileService, uploadCfg config.UploadConfig) *ProfileHandler {
	return &ProfileHandler{service: service, uploadCfg: uploadCfg}
}

func writeProfileError(c *gin.Context, err error) {
	var profileErr *model.ProfileError
	if !errors.As(err, &profileErr) {
		response.BadRequest(c, err.Error())
		return
	}

	switch profileErr.Code {
	case model.ErrCodeProfileNotFound:
		response.ErrorResponse(c, http.StatusNotFound, profileErr.Code, profileErr.Message)
	case model.ErrCodeEmailTaken, model.ErrCodeHandleTaken:
		response.ErrorResponse(c, http.StatusConflict, profileErr.Code, profileErr.Message)
	case model.ErrCodeInvalidCredentials:
		response.ErrorResponse(c, http.StatusUnauthorized, profileErr.Code, profileErr.Message)
	default:
		response.ErrorResponse(c, http.StatusBadRequest, profileErr.Code, profileErr.Message)
	}
}

// Register handles POST /auth/register
func (h *ProfileHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *ProfileHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Refresh handles POST /auth/refresh
func (h *ProfileHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refresh_token is required")
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetMe handles GET /profiles/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile.ToDTO(true))
}

// UpdateMe handles PATCH /profiles/me
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile.ToDTO(true))
}

// UploadAvatar handles POST /upload-avatar (multipart: file)
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Avatar file is required")
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

	profile, err := h.service.UploadAvatar(c.Request.Context(), userID, data)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, profile.ToDTO(true))
}

// ResolveArtist handles GET /artist-resolver?handle=...
func (h *ProfileHandler) ResolveArtist(c *gin.Context) {
	identifier := c.Query("handle")
	if identifier == "" {
		response.BadRequest(c, "handle query parameter is required")
		return
	}

	var viewer *uuid.UUID
	if userID, ok := middleware.UserID(c); ok {
		viewer = &userID
	}

	result, err := h.service.ResolveArtist(c.Request.Context(), identifier, viewer)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeProfileNotFound, "Profile not found")
			return
		}
		response.InternalServerError(c, "Failed to resolve artist")
		return
	}

	response.Success(c, http.StatusOK, result)
}
