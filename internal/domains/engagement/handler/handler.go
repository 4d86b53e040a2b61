package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artichoke-backend/internal/domains/engagement/model"
	"artichoke-backend/internal/domains/engagement/service"
	"artichoke-backend/internal/shared/middleware"
	"artichoke-backend/internal/shared/response"
)

// =====================================================
// ENGAGEMENT HANDLER
// =====================================================

type EngagementHandler struct {
	service service.ServiceInterface
}

func NewEngagementHandler(service service.ServiceInterface) *EngagementHandler {
	return &EngagementHandler{service: service}
}

func (h *EngagementHandler) set(c *gin.Context, kind model.Kind, on bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	artworkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid artwork ID")
		return
	}

	if err := h.service.Set(c.Request.Context(), kind, userID, artworkID, on); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"artwork_id": artworkID,
		string(kind): on,
	})
}

// Like handles POST /artworks/:id/like
func (h *EngagementHandler) Like(c *gin.Context) { h.set(c, model.KindLike, true) }

// Unlike handles DELETE /artworks/:id/like
func (h *EngagementHandler) Unlike(c *gin.Context) { h.set(c, model.KindLike, false) }

// Save handles POST /artworks/:id/save
func (h *EngagementHandler) Save(c *gin.Context) { h.set(c, model.KindSave, true) }

// Unsave handles DELETE /artworks/:id/save
func (h *EngagementHandler) Unsave(c *gin.Context) { h.set(c, model.KindSave, false) }

func (h *EngagementHandler) list(c *gin.Context, kind model.Kind) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	ids, err := h.service.IDList(c.Request.Context(), kind, userID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	response.Success(c, http.StatusOK, model.IDSetResponse{ArtworkIDs: ids})
}

// Likes handles GET /me/likes
func (h *EngagementHandler) Likes(c *gin.Context) { h.list(c, model.KindLike) }

// Saves handles GET /me/saves
func (h *EngagementHandler) Saves(c *gin.Context) { h.list(c, model.KindSave) }
