package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	artworkService "artichoke-backend/internal/domains/artwork/service"
	"artichoke-backend/internal/domains/profile/model"
	"artichoke-backend/internal/domains/profile/repository"
	"artichoke-backend/internal/infrastructure/storage"
	"artichoke-backend/pkg/jwt"
)

const bcryptCost = 12

// =====================================================
// PROFILE SERVICE
// =====================================================

type profileService struct {
	repo       repository.ProfileRepository
	artworks   artworkService.ServiceInterface
	jwtManager *jwt.Manager
	storage    *storage.MinIOStorage
	processor  *storage.ImageProcessor
}

func NewProfileService(
	repo repository.ProfileRepository,
	artworks artworkService.ServiceInterface,
	jwtManager *jwt.Manager,
	minioStorage *storage.MinIOStorage,
	processor *storage.ImageProcessor,
) ProfileService {
	return &profileService{
		repo:       repo,
		artworks:   artworks,
		jwtManager: jwtManager,
		storage:    minioStorage,
		processor:  processor,
	}
}

// =====================================================
// AUTH
// =====================================================

func (s *profileService) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, model.NewEmailTakenError()
	} else if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Username:     req.Username,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", profile.ID.String()).
		Str("role", profile.Role).
		Msg("Profile registered")

	return s.tokenPair(profile)
}

func (s *profileService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	return s.tokenPair(profile)
}

func (s *profileService) RefreshToken(ctx context.Context, refreshToken string) (*model.LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return s.tokenPair(profile)
}

func (s *profileService) tokenPair(profile *model.Profile) (*model.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(profile.ID.String(), profile.Email, profile.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(profile.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
		Profile:      profile.ToDTO(true),
	}, nil
}

// =====================================================
// PROFILE
// =====================================================

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req)
}

func (s *profileService) UploadAvatar(ctx context.Context, id uuid.UUID, data []byte) (*model.Profile, error) {
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("validate avatar: %w", err)
	}

	ext := "jpg"
	contentType := "image/jpeg"
	if http.DetectContentType(data) == "image/png" {
		ext = "png"
		contentType = "image/png"
	}
	key := fmt.Sprintf("avatars/%s/avatar.%s", id, ext)

	if _, err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	if err := s.repo.SetAvatar(ctx, id, key); err != nil {
		return nil, fmt.Errorf("record avatar: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}
