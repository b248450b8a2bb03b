// Package catalog implements the agent ranking view: fetch the full catalog,
// derive the global rank order, and filter by category for display.
package catalog

import (
	"context"
	"sort"

	"github.com/agentmarket/backend/internal/apperrors"
	"github.com/agentmarket/backend/internal/models"
)

// AgentLister is the subset of the agent repository the catalog needs.
type AgentLister interface {
	List(ctx context.Context) ([]models.Agent, error)
}

type Service struct {
	repo AgentLister
}

func NewService(repo AgentLister) *Service {
	return &Service{repo: repo}
}

// Load fetches the full catalog and ranks it. The whole table is assumed to
// fit in one response; that scale limit is deliberate.
func (s *Service) Load(ctx context.Context) ([]models.RankedAgent, error) {
	agents, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Storage("list agents", err)
	}
	return Rank(agents), nil
}

// compositeScore orders agents for ranking: the rating average plus a small
// per-review bonus. The 0.001 multiplier breaks near-ties in favor of agents
// with more reviews without letting volume dominate rating quality.
func compositeScore(a models.Agent) float64 {
	avg := 0.0
	if a.RatingAvg != nil {
		avg = *a.RatingAvg
	}
	count := 0
	if a.RatingCount != nil {
		count = *a.RatingCount
	}
	return avg + float64(count)*0.001
}

func priceOrZero(a models.Agent) float64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}

// Rank sorts agents by composite score descending, breaks exact ties by
// price ascending, and assigns each agent its 1-based global rank. The sort
// is stable, so reranking the same input is deterministic and idempotent.
func Rank(agents []models.Agent) []models.RankedAgent {
	ranked := make([]models.RankedAgent, len(agents))
	for i, ag := range agents {
		ranked[i] = models.RankedAgent{Agent: ag, Rating: ag.RatingAvg}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := compositeScore(ranked[i].Agent), compositeScore(ranked[j].Agent)
		if si == sj {
			return priceOrZero(ranked[i].Agent) < priceOrZero(ranked[j].Agent)
		}
		return si > sj
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
