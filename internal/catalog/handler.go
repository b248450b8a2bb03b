package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agentmarket/backend/internal/apperrors"
	"github.com/agentmarket/backend/internal/models"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

type listAgentsResponse struct {
	OK       bool      `json:"ok"`
	Category string    `json:"category"`
	Count    int       `json:"count"`
	Agents   []Listing `json:"agents"`
}

// ListAgents handles GET /api/agents. The optional category query parameter
// narrows the visible set without touching global ranks.
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := NewSnapshot().Apply(FetchStarted{})
	snap = snap.Apply(SelectCategory{Category: r.URL.Query().Get("category")})

	ranked, err := h.svc.Load(r.Context())
	if err != nil {
		snap = snap.Apply(FetchFailed{Message: err.Error()})
		if apperrors.IsStorage(err) {
			writeError(w, http.StatusBadRequest, snap.Err)
			return
		}
		h.log.Error("list agents failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list agents failed")
		return
	}
	snap = snap.Apply(FetchSucceeded{Agents: ranked})

	visible := snap.Visible()
	writeJSON(w, http.StatusOK, listAgentsResponse{
		OK:       true,
		Category: snap.Category,
		Count:    len(visible),
		Agents:   visible,
	})
}

type listCategoriesResponse struct {
	OK         bool     `json:"ok"`
	Categories []string `json:"categories"`
}

// ListCategories handles GET /api/categories: the fixed set plus "all".
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cats := append([]string{models.CategoryAll}, models.Categories()...)
	writeJSON(w, http.StatusOK, listCategoriesResponse{OK: true, Categories: cats})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
