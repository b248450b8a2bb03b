package reviews

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agentmarket/backend/internal/apperrors"
	"github.com/agentmarket/backend/internal/metrics"
	"github.com/agentmarket/backend/internal/models"
)

// TokenValidator resolves a Bearer token to a user identity. Optional: guest
// submissions work without one.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (userID, name string, err error)
}

type Handler struct {
	svc     *Service
	authSvc TokenValidator
	mtr     *metrics.Metrics
	log     *slog.Logger
}

func NewHandler(svc *Service, authSvc TokenValidator, mtr *metrics.Metrics, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, authSvc: authSvc, mtr: mtr, log: log}
}

type submitReviewRequest struct {
	AgentID  string  `json:"agentId"`
	Rating   float64 `json:"rating"`
	Review   *string `json:"review,omitempty"`
	UserName string  `json:"userName,omitempty"`
	UserID   string  `json:"userId,omitempty"`
}

type submitReviewResponse struct {
	OK     bool           `json:"ok"`
	Review *models.Review `json:"review"`
}

// SubmitReview handles POST /api/review. A valid Bearer token fills in the
// user id and name when the body omits them.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if token := extractBearer(r); token != "" && h.authSvc != nil {
		if userID, name, err := h.authSvc.ValidateToken(r.Context(), token); err == nil {
			if strings.TrimSpace(req.UserID) == "" {
				req.UserID = userID
			}
			if strings.TrimSpace(req.UserName) == "" {
				req.UserName = name
			}
		}
	}

	stored, err := h.svc.Submit(r.Context(), SubmitRequest{
		AgentID:  req.AgentID,
		Rating:   req.Rating,
		Review:   req.Review,
		UserName: req.UserName,
		UserID:   req.UserID,
	})
	if err != nil {
		if apperrors.IsValidation(err) || apperrors.IsStorage(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("review submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "review submit failed")
		return
	}

	if h.mtr != nil {
		h.mtr.ReviewsSubmitted.Inc()
	}
	writeJSON(w, http.StatusOK, submitReviewResponse{OK: true, Review: stored})
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
