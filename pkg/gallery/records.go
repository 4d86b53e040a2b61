package gallery

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Artwork is a feed row as served by the API.
type Artwork struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"image_url"` // storage path, resolve before display
	Tags        []string  `json:"tags"`
	IsPublic    bool      `json:"is_public"`
	Username    *string   `json:"username"`
	Handle      *string   `json:"handle"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	Liked       bool      `json:"liked"`
	Saved       bool      `json:"saved"`
}

// Profile is a public account as served by the API.
type Profile struct {
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

// CanonicalHandle is the authoritative short identifier for a profile.
func (p *Profile) CanonicalHandle() string {
	if p.Handle != nil && *p.Handle != "" {
		return *p.Handle
	}
	return p.ID.String()
}

type loginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Profile      Profile `json:"profile"`
}

type idSetResponse struct {
	ArtworkIDs []uuid.UUID `json:"artwork_ids"`
}

// Login authenticates and installs the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*Profile, error) {
	var result loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.call(ctx, "POST", "/auth/login", nil, body, &result); err != nil {
		return nil, err
	}

	c.SetSession(result.AccessToken, result.Profile.ID)
	return &result.Profile, nil
}

// Feed returns public artworks, newest first.
func (c *Client) Feed(ctx context.Context) ([]Artwork, error) {
	var artworks []Artwork
	if err := c.call(ctx, "GET", "/artworks", nil, nil, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// ArtworksBy filters the feed by one owner identity field.
func (c *Client) ArtworksBy(ctx context.Context, field, value string) ([]Artwork, error) {
	query := url.Values{field: {value}}
	var artworks []Artwork
	if err := c.call(ctx, "GET", "/artworks", query, nil, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// Me returns the logged-in profile.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.call(ctx, "GET", "/profiles/me", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LikedIDs returns the ids of artworks the user liked, newest first.
func (c *Client) LikedIDs(ctx context.Context) ([]uuid.UUID, error) {
	return c.idSet(ctx, "/me/likes")
}

// SavedIDs returns the ids of artworks the user saved, newest first.
func (c *Client) SavedIDs(ctx context.Context) ([]uuid.UUID, error) {
	return c.idSet(ctx, "/me/saves")
}

func (c *Client) idSet(ctx context.Context, path string) ([]uuid.UUID, error) {
	var result idSetResponse
	if err := c.call(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, err
	}
	return result.ArtworkIDs, nil
}
