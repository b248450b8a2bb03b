package execution

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/containerd/errdefs"

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

type executeRequest struct {
	AgentID string `json:"agentId"`
	// ID is the legacy field name for AgentID; agentId wins when both are set.
	ID    string `json:"id"`
	Query string `json:"query"`
}

type executeResponse struct {
	OK      bool                    `json:"ok"`
	Agent   *models.Agent           `json:"agent"`
	Message string                  `json:"message"`
	Query   string                  `json:"query"`
	Result  *models.ExecutionResult `json:"result"`
}

// Execute handles POST /api/execute.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	agentID := req.AgentID
	if strings.TrimSpace(agentID) == "" {
		agentID = req.ID
	}
	query := strings.TrimSpace(req.Query)

	agent, result, err := h.svc.Execute(r.Context(), agentID, query)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errdefs.IsNotFound(err):
			writeError(w, http.StatusNotFound, "agent not found")
		case apperrors.IsStorage(err):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("execute failed", "error", err)
			writeError(w, http.StatusInternalServerError, "execute failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, executeResponse{
		OK:      true,
		Agent:   agent,
		Message: "Execution triggered for " + agent.Name,
		Query:   query,
		Result:  result,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
