// Package stats runs the out-of-band recompute of per-agent aggregate
// rating statistics as a River job.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	"github.com/agentmarket/backend/internal/metrics"
)

type RefreshRatingStatsArgs struct {
	AgentID string `json:"agent_id"`
}

func (RefreshRatingStatsArgs) Kind() string { return "refresh_rating_stats" }

// Refresher triggers the store-side aggregate recompute.
type Refresher interface {
	RefreshAgentRatingStats(ctx context.Context, agentID string) error
}

type RefreshRatingStatsWorker struct {
	river.WorkerDefaults[RefreshRatingStatsArgs]
	stats Refresher
	mtr   *metrics.Metrics
	log   *slog.Logger
}

func NewRefreshRatingStatsWorker(stats Refresher, mtr *metrics.Metrics, log *slog.Logger) *RefreshRatingStatsWorker {
	if log == nil {
		log = slog.Default()
	}
	return &RefreshRatingStatsWorker{stats: stats, mtr: mtr, log: log}
}

// Work recomputes the aggregates for one agent. Errors propagate so River
// retries; the failure channel never joins the submitting request's result.
func (w *RefreshRatingStatsWorker) Work(ctx context.Context, job *river.Job[RefreshRatingStatsArgs]) error {
	if err := w.stats.RefreshAgentRatingStats(ctx, job.Args.AgentID); err != nil {
		if w.mtr != nil {
			w.mtr.StatsRefreshTotal.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("refresh rating stats for agent %s: %w", job.Args.AgentID, err)
	}
	if w.mtr != nil {
		w.mtr.StatsRefreshTotal.WithLabelValues("ok").Inc()
	}
	w.log.Debug("rating stats refreshed", "agent_id", job.Args.AgentID)
	return nil
}
