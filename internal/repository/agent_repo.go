package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentmarket/backend/internal/models"
)

type AgentRepo struct {
	pool *pgxpool.Pool
}

func NewAgentRepo(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

// agentProjection is the bounded field set read by both the catalog and the
// execution stub. The catalog assumes the full table fits in one response;
// there is deliberately no pagination.
const agentProjection = `id, name, author, description, category, price, rating_avg, rating_count, test_score, pricing_model, url`

// List returns the full catalog in stable insertion order. Ranking happens
// in memory, not in SQL.
func (r *AgentRepo) List(ctx context.Context) ([]models.Agent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+agentProjection+`
		FROM agents
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Agent
	for rows.Next() {
		var ag models.Agent
		if err := rows.Scan(&ag.ID, &ag.Name, &ag.Author, &ag.Description, &ag.Category, &ag.Price, &ag.RatingAvg, &ag.RatingCount, &ag.TestScore, &ag.PricingModel, &ag.URL); err != nil {
			return nil, err
		}
		list = append(list, ag)
	}
	return list, rows.Err()
}

// GetByID returns the agent projection for one id. A missing row is reported
// as errdefs.ErrNotFound so callers can distinguish it from transport errors.
func (r *AgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	var ag models.Agent
	err := r.pool.QueryRow(ctx, `
		SELECT `+agentProjection+`
		FROM agents WHERE id = $1
	`, id).Scan(&ag.ID, &ag.Name, &ag.Author, &ag.Description, &ag.Category, &ag.Price, &ag.RatingAvg, &ag.RatingCount, &ag.TestScore, &ag.PricingModel, &ag.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agent %q: %w", id, errdefs.ErrNotFound)
		}
		return nil, err
	}
	return &ag, nil
}
