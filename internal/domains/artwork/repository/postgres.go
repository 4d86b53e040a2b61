package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"artichoke-backend/internal/domains/artwork/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresArtworkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresArtworkRepository(pool *pgxpool.Pool) ArtworkRepository {
	return &postgresArtworkRepository{pool: pool}
}

const feedColumns = `
	id, user_id, title, description, image_url, tags, is_public,
	variants_ready, created_at, username, handle, avatar_url
`

func scanFeedRows(rows pgx.Rows) ([]model.FeedRow, error) {
	defer rows.Close()

	var out []model.FeedRow
	for rows.Next() {
		var r model.FeedRow
		var tags []string
		err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Title,
			&r.Description,
			&r.ImageURL,
			pq.Array(&tags),
			&r.IsPublic,
			&r.VariantsReady,
			&r.CreatedAt,
			&r.Username,
			&r.Handle,
			&r.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		r.Tags = tags
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("feed rows: %w", err)
	}
	return out, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresArtworkRepository) Create(ctx context.Context, artwork *model.Artwork) error {
	query := `
		INSERT INTO artworks (
			id, user_id, title, description, image_url, tags, is_public,
			variants_ready, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		artwork.ID,
		artwork.UserID,
		artwork.Title,
		artwork.Description,
		artwork.ImageURL,
		pq.Array(artwork.Tags),
		artwork.IsPublic,
		artwork.VariantsReady,
		artwork.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create artwork: %w", err)
	}

	return nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresArtworkRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artwork, error) {
	query := `
		SELECT id, user_id, title, description, image_url, tags, is_public,
		       variants_ready, created_at
		FROM artworks
		WHERE id = $1
	`

	a := &model.Artwork{}
	var tags []string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.UserID,
		&a.Title,
		&a.Description,
		&a.ImageURL,
		pq.Array(&tags),
		&a.IsPublic,
		&a.VariantsReady,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	a.Tags = tags
	return a, nil
}

func (r *postgresArtworkRepository) ListFeed(ctx context.Context) ([]model.FeedRow, error) {
	query := `
		SELECT ` + feedColumns + `
		FROM artworks_with_username
		WHERE is_public
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed: %w", err)
	}
	return scanFeedRows(rows)
}

func (r *postgresArtworkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.FeedRow, error) {
	query := `
		SELECT ` + feedColumns + `
		FROM artworks_with_username
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by user: %w", err)
	}
	return scanFeedRows(rows)
}

func (r *postgresArtworkRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.FeedRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// array_position keeps the caller's ordering (e.g. newest-liked first).
	query := `
		SELECT ` + feedColumns + `
		FROM artworks_with_username
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by ids: %w", err)
	}
	return scanFeedRows(rows)
}

func (r *postgresArtworkRepository) ListByField(ctx context.Context, field, value string) ([]model.FeedRow, error) {
	// The field is interpolated, so it must come from the whitelist.
	switch field {
	case model.LookupFieldHandle, model.LookupFieldUsername, model.LookupFieldUserID:
	default:
		return nil, model.ErrInvalidLookup
	}

	if field == model.LookupFieldUserID {
		if _, err := uuid.Parse(value); err != nil {
			return nil, nil
		}
	}

	query := `
		SELECT ` + feedColumns + `
		FROM artworks_with_username
		WHERE ` + field + ` = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by %s: %w", field, err)
	}
	return scanFeedRows(rows)
}

// =====================================================
// WORKER SUPPORT
// =====================================================

func (r *postgresArtworkRepository) MarkVariantsReady(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE artworks SET variants_ready = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark variants ready: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArtworkNotFound
	}
	return nil
}

func (r *postgresArtworkRepository) ListImagePaths(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT image_url FROM artworks`)
	if err != nil {
		return nil, fmt.Errorf("failed to list image paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan image path: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("image paths: %w", err)
	}
	return paths, nil
}
