package gallery

import (
	"context"
	"errors"
	"net/url"
	"regexp"
)

// Outcome classifies an artist resolution.
type Outcome int

const (
	// NotFound means no profile and no artworks matched.
	NotFound Outcome = iota
	// Found means a canonical profile matched the identifier.
	Found
	// Redirect means the identifier is a legacy alias; navigate to
	// Canonical and resolve again. At most one redirect per lookup.
	Redirect
	// ArtworksOnly means artworks carry the identifier but no profile
	// exists; show Banner over the artwork grid.
	ArtworksOnly
)

// ArtworksOnlyBanner is shown when artworks resolve without a profile.
const ArtworksOnlyBanner = "Profile not found. Showing artworks only."

// Resolution is the uniform result of ResolveArtist.
type Resolution struct {
	Outcome   Outcome
	Profile   *Profile
	Artworks  []Artwork
	Canonical string // set when Outcome is Redirect
	Banner    string // set when Outcome is ArtworksOnly
}

type resolveResponse struct {
	Profile  *Profile  `json:"profile"`
	Artworks []Artwork `json:"artworks"`
}

// uuidRe gates which lookups may treat the identifier as a user id.
var uuidRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ResolveArtist runs the ordered lookup chain for an artist page
// identifier:
//
//  1. the /artist-resolver endpoint. A profile whose canonical handle
//     differs from the identifier yields Redirect without any further
//     fetch; a null profile with artworks yields ArtworksOnly.
//  2. if the endpoint is unreachable, artworks by handle, then by
//     username, then by user id when the identifier is shaped like a
//     UUID. Rows carrying a different canonical handle again yield
//     Redirect.
//  3. otherwise NotFound.
//
// Each step runs only when the previous one produced nothing.
func (c *Client) ResolveArtist(ctx context.Context, identifier string) Resolution {
	if res, ok := c.resolveViaEndpoint(ctx, identifier); ok {
		return res
	}

	fields := []string{"handle", "username"}
	if uuidRe.MatchString(identifier) {
		fields = append(fields, "user_id")
	}

	for _, field := range fields {
		artworks, err := c.ArtworksBy(ctx, field, identifier)
		if err != nil {
			c.log.Warn().Err(err).Str("field", field).Msg("Artwork lookup failed")
			continue
		}
		if len(artworks) == 0 {
			continue
		}

		// A legacy identifier whose rows carry a newer handle means the
		// artist renamed; hand back the canonical handle once.
		if field != "handle" {
			if h := artworks[0].Handle; h != nil && *h != "" && *h != identifier {
				return Resolution{Outcome: Redirect, Canonical: *h}
			}
		}

		return Resolution{
			Outcome:  ArtworksOnly,
			Artworks: artworks,
			Banner:   ArtworksOnlyBanner,
		}
	}

	return Resolution{Outcome: NotFound}
}

// resolveViaEndpoint tries the server-side resolver. ok is false only
// when the endpoint could not answer at all and the chain should fall
// through to artwork lookups.
func (c *Client) resolveViaEndpoint(ctx context.Context, identifier string) (Resolution, bool) {
	var result resolveResponse
	query := url.Values{"handle": {identifier}}

	err := c.call(ctx, "GET", "/artist-resolver", query, nil, &result)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.Code == "PRF001" {
			// The endpoint ran the full server-side chain and the
			// identifier matches nothing. That answer is authoritative.
			return Resolution{Outcome: NotFound}, true
		}
		c.log.Warn().Err(err).Msg("Resolver endpoint failed, falling back to artwork lookups")
		return Resolution{}, false
	}

	if result.Profile != nil {
		if canonical := result.Profile.CanonicalHandle(); canonical != identifier {
			return Resolution{Outcome: Redirect, Canonical: canonical}, true
		}
		return Resolution{Outcome: Found, Profile: result.Profile, Artworks: result.Artworks}, true
	}

	if len(result.Artworks) > 0 {
		return Resolution{
			Outcome:  ArtworksOnly,
			Artworks: result.Artworks,
			Banner:   ArtworksOnlyBanner,
		}, true
	}

	return Resolution{Outcome: NotFound}, true
}
