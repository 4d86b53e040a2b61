package service

import (
	"context"

	"github.com/google/uuid"

	artworkModel "artichoke-backend/internal/domains/artwork/model"
	"artichoke-backend/internal/domains/profile/model"
)

// ResolveResult is what the artist resolver produces. Profile is nil
// when no account matched but artworks carrying the identifier exist;
// callers then render the artworks under a "profile not found" notice.
type ResolveResult struct {
	Profile  *model.ProfileDTO          `json:"profile"`
	Artworks []artworkModel.FeedArtwork `json:"artworks"`
}

// ProfileService is the business contract for accounts and identity.
type ProfileService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*model.LoginResponse, error)

	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.Profile, error)
	// UploadAvatar stores the image and records its path on the profile.
	UploadAvatar(ctx context.Context, id uuid.UUID, data []byte) (*model.Profile, error)

	// ResolveArtist runs the identifier lookup chain for public artist
	// pages. See resolver.go for the ordering.
	ResolveArtist(ctx context.Context, identifier string, viewer *uuid.UUID) (*ResolveResult, error)
}
