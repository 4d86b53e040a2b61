package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"artichoke-backend/internal/domains/profile/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

const profileColumns = `
	id, email, password_hash,
	username, handle, bio, avatar_url, user_type, instagram, website,
	created_at, updated_at
`

func scanProfile(row pgx.Row) (*model.Profile, error) {
	p := &model.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.Username,
		&p.Handle,
		&p.Bio,
		&p.AvatarURL,
		&p.Role,
		&p.Instagram,
		&p.Website,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (
			id, email, password_hash,
			username, handle, bio, avatar_url, user_type, instagram, website,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.Username,
		profile.Handle,
		profile.Bio,
		profile.AvatarURL,
		profile.Role,
		profile.Instagram,
		profile.Website,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		// Unique constraint violation: email or handle already in use
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "profiles_handle_key" {
				return model.ErrHandleTaken
			}
			return model.ErrEmailTaken
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// =====================================================
// LOOKUPS
// =====================================================

func (r *postgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1)`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepository) GetByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1 LIMIT 1`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, handle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by handle: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepository) GetByAlias(ctx context.Context, alias string) (*model.Profile, error) {
	// Handle wins over username so the canonical owner of a handle is
	// never shadowed by someone else's username.
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE handle = $1 OR username = $1
		ORDER BY (handle = $1) DESC
		LIMIT 1
	`

	p, err := scanProfile(r.pool.QueryRow(ctx, query, alias))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by alias: %w", err)
	}
	return p, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresProfileRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateProfileRequest) (*model.Profile, error) {
	// COALESCE keeps columns whose request field is nil.
	query := `
		UPDATE profiles SET
			username  = COALESCE($2, username),
			handle    = COALESCE($3, handle),
			bio       = COALESCE($4, bio),
			instagram = COALESCE($5, instagram),
			website   = COALESCE($6, website),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns

	p, err := scanProfile(r.pool.QueryRow(ctx, query,
		id,
		req.Username,
		req.Handle,
		req.Bio,
		req.Instagram,
		req.Website,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrHandleTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

func (r *postgresProfileRepository) SetAvatar(ctx context.Context, id uuid.UUID, path string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE profiles SET avatar_url = $2, updated_at = now() WHERE id = $1`,
		id, path,
	)
	if err != nil {
		return fmt.Errorf("failed to set avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}
