package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Roles
const (
	RoleUser    = "user"
	RoleCreator = "creator"
)

// Profile represents an account and its public identity.
// AvatarURL is a storage path inside the artworks bucket, not a URL.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	Username  string  `json:"username"`
	Handle    *string `json:"handle"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"user_type"`
	Instagram *string `json:"instagram"`
	Website   *string `json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreator reports whether the profile may upload artworks.
func (p *Profile) IsCreator() bool {
	return p.Role == RoleCreator
}

// CanonicalHandle returns the authoritative short identifier, falling
// back to the id when no handle is set.
func (p *Profile) CanonicalHandle() string {
	if p.Handle != nil && *p.Handle != "" {
		return *p.Handle
	}
	return p.ID.String()
}

// uuidRe matches the 8-4-4-4-12 hex shape. Purely syntactic: it gates
// which lookup field the resolver tries, nothing more.
var uuidRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// LooksLikeUUID reports whether s is shaped like a UUID.
func LooksLikeUUID(s string) bool {
	return uuidRe.MatchString(s)
}

var handleRe = regexp.MustCompile(`^[a-z0-9._]+$`)

