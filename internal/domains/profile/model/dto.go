package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
	Role     string `json:"user_type,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(2, 50),
		),
		validation.Field(&r.Role,
			validation.In("", RoleUser, RoleCreator).Error("user_type must be user or creator"),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse - JWT tokens plus the authenticated profile
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Profile      ProfileDTO `json:"profile"`
}

// ========================================
// PROFILE DTOs
// ========================================

// UpdateProfileRequest is a partial update: nil fields are left alone.
type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Handle    *string `json:"handle"`
	Bio       *string `json:"bio"`
	Instagram *string `json:"instagram"`
	Website   *string `json:"website"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != nil, validation.Length(2, 50)),
		),
		validation.Field(&r.Handle,
			validation.When(r.Handle != nil && *r.Handle != "",
				validation.Length(2, 50),
				validation.Match(handleRe).Error("handle may contain lowercase letters, digits, dots and underscores"),
			),
		),
		validation.Field(&r.Bio,
			validation.When(r.Bio != nil, validation.Length(0, 1000)),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil && *r.Website != "", is.URL),
		),
	)
}

// ProfileDTO is the public shape of a profile.
type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username"`
	Handle    *string   `json:"handle"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	Role      string    `json:"user_type"`
	Instagram *string   `json:"instagram"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDTO projects an entity into its public shape.
// includeEmail is true only when the caller is the profile owner.
func (p *Profile) ToDTO(includeEmail bool) ProfileDTO {
	dto := ProfileDTO{
		ID:        p.ID,
		Username:  p.Username,
		Handle:    p.Handle,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
		Instagram: p.Instagram,
		Website:   p.Website,
		CreatedAt: p.CreatedAt,
	}
	if includeEmail {
		dto.Email = p.Email
	}
	return dto
}
