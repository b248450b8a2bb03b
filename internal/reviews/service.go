// Package reviews implements review ingestion: validate, upsert the user,
// upsert the review, then trigger the aggregate rating recompute.
package reviews

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/agentmarket/backend/internal/apperrors"
	"github.com/agentmarket/backend/internal/models"
)

// UserStore upserts the submitting user before the review is written.
type UserStore interface {
	Upsert(ctx context.Context, u models.User) error
}

// ReviewStore upserts the review keyed by (user_id, agent_id) and returns
// the stored row.
type ReviewStore interface {
	Upsert(ctx context.Context, rev models.Review) (*models.Review, error)
}

// EnqueueStatsRefresh schedules the aggregate rating recompute for an agent;
// typically a closure over river.Client.Insert.
type EnqueueStatsRefresh func(ctx context.Context, agentID string) error

type SubmitRequest struct {
	AgentID  string
	Rating   float64
	Review   *string
	UserName string
	UserID   string
}

type Service struct {
	users          UserStore
	reviews        ReviewStore
	enqueueRefresh EnqueueStatsRefresh
	log            *slog.Logger
}

func NewService(users UserStore, reviews ReviewStore, enqueueRefresh EnqueueStatsRefresh, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, reviews: reviews, enqueueRefresh: enqueueRefresh, log: log}
}

// Submit validates the request, performs the two writes in order (the review
// row references the user row), and fires the stats recompute trigger.
// Nothing is written unless every validation passes. The returned review
// echoes the stored values, including any rounding or truncation applied.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*models.Review, error) {
	agentID := strings.TrimSpace(req.AgentID)
	if agentID == "" {
		return nil, apperrors.Validation("agentId is required")
	}

	rating := int(math.Round(req.Rating))
	if req.Rating == 0 || rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be an integer between 1 and 5")
	}

	text := req.Review
	if text != nil {
		t := truncate(*text, models.MaxReviewChars)
		text = &t
	}

	name := strings.TrimSpace(req.UserName)
	if name == "" {
		name = models.GuestName
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = uuid.New().String()
	}

	// User first: the review row references it. No transaction spans the two
	// writes; a crash in between leaves a user with no review, which a retry
	// repairs by re-upserting both.
	if err := s.users.Upsert(ctx, models.User{ID: userID, Name: name}); err != nil {
		return nil, apperrors.Storage("upsert user", err)
	}

	stored, err := s.reviews.Upsert(ctx, models.Review{
		UserID:  userID,
		AgentID: agentID,
		Rating:  rating,
		Review:  text,
	})
	if err != nil {
		return nil, apperrors.Storage("upsert review", err)
	}

	// Best-effort: the review write is the durable outcome, and a lost
	// trigger is repaired by any later one, so enqueue failure never fails
	// the submission.
	if s.enqueueRefresh != nil {
		if err := s.enqueueRefresh(ctx, agentID); err != nil {
			s.log.Warn("rating stats refresh enqueue failed", "agent_id", agentID, "error", err)
		}
	}

	return stored, nil
}

// truncate limits s to max characters (runes, not bytes).
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
