package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"artichoke-backend/internal/domains/engagement/model"
)

type postgresEngagementRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEngagementRepository(pool *pgxpool.Pool) EngagementRepository {
	return &postgresEngagementRepository{pool: pool}
}

func (r *postgresEngagementRepository) Add(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error {
	table, err := kind.Table()
	if err != nil {
		return err
	}

	// Table name comes from the Kind whitelist, never from input.
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, artwork_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, artwork_id) DO NOTHING
	`, table)

	if _, err := r.pool.Exec(ctx, query, userID, artworkID); err != nil {
		return fmt.Errorf("failed to add %s: %w", kind, err)
	}
	return nil
}

func (r *postgresEngagementRepository) Remove(ctx context.Context, kind model.Kind, userID, artworkID uuid.UUID) error {
	table, err := kind.Table()
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		DELETE FROM %s WHERE user_id = $1 AND artwork_id = $2
	`, table)

	if _, err := r.pool.Exec(ctx, query, userID, artworkID); err != nil {
		return fmt.Errorf("failed to remove %s: %w", kind, err)
	}
	return nil
}

func (r *postgresEngagementRepository) ListArtworkIDs(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error) {
	table, err := kind.Table()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT artwork_id FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, table)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", kind, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", kind, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s ids: %w", kind, err)
	}
	return ids, nil
}
