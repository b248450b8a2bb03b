// Package execution implements the execution stub: look up the agent and
// synthesize a placeholder result. It performs no real agent invocation and
// exists as the integration point for a future execution backend.
package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/google/uuid"

	"github.com/agentmarket/backend/internal/apperrors"
	"github.com/agentmarket/backend/internal/models"
)

// PlaceholderOutput is returned for every stub execution.
const PlaceholderOutput = "This is a dummy execution result for testing. Replace with real agent output."

// AgentGetter is the subset of the agent repository the stub needs.
type AgentGetter interface {
	GetByID(ctx context.Context, id string) (*models.Agent, error)
}

type Service struct {
	agents AgentGetter
}

func NewService(agents AgentGetter) *Service {
	return &Service{agents: agents}
}

// Execute validates the agent id, looks the agent up, and returns the
// synthetic result. A missing row carries errdefs.ErrNotFound; other lookup
// failures surface as storage errors with the transport message attached.
func (s *Service) Execute(ctx context.Context, agentID, query string) (*models.Agent, *models.ExecutionResult, error) {
	id := strings.TrimSpace(agentID)
	if id == "" {
		return nil, nil, apperrors.Validation("agentId is required")
	}

	agent, err := s.agents.GetByID(ctx, id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, nil, err
		}
		return nil, nil, apperrors.Storage("agent lookup", fmt.Errorf("agent lookup failed: %w", err))
	}

	display := strings.TrimSpace(query)
	if display == "" {
		display = "your request"
	}

	res := &models.ExecutionResult{
		Summary:    fmt.Sprintf("Executed '%s' for: %s", agent.Name, display),
		Output:     PlaceholderOutput,
		TraceID:    uuid.New().String()[:8],
		FinishedAt: time.Now().UTC(),
	}
	return agent, res, nil
}
