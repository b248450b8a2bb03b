package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepo triggers the store-side recompute of per-agent aggregate rating
// statistics. The aggregates are a derived view; any later trigger repairs a
// lost one.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// RefreshAgentRatingStats recomputes rating_avg and rating_count for the
// given agent via the refresh_agent_rating_stats SQL function.
func (r *StatsRepo) RefreshAgentRatingStats(ctx context.Context, agentID string) error {
	_, err := r.pool.Exec(ctx, `SELECT refresh_agent_rating_stats($1)`, agentID)
	return err
}
