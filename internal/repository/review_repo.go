package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentmarket/backend/internal/models"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// Upsert writes the review keyed by (user_id, agent_id): insert if the pair
// is new, otherwise overwrite rating and text. Returns the stored row so the
// caller echoes exactly what was persisted.
func (r *ReviewRepo) Upsert(ctx context.Context, rev models.Review) (*models.Review, error) {
	var stored models.Review
	err := r.pool.QueryRow(ctx, `
		INSERT INTO review (user_id, agent_id, rating, review)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, agent_id) DO UPDATE
			SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = now()
		RETURNING user_id, agent_id, rating, review, created_at, updated_at
	`, rev.UserID, rev.AgentID, rev.Rating, rev.Review).Scan(
		&stored.UserID, &stored.AgentID, &stored.Rating, &stored.Review, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListByUser returns a user's reviews, most recently updated first.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, agent_id, rating, review, created_at, updated_at
		FROM review WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Review
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.UserID, &rev.AgentID, &rev.Rating, &rev.Review, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, rev)
	}
	return list, rows.Err()
}
