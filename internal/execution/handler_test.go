package execution

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agentmarket/backend/internal/models"
)

func postExecute(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Execute(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Error
}

func TestExecuteHandlerSuccess(t *testing.T) {
	h := NewHandler(NewService(getterWith(&models.Agent{ID: "a1", Name: "Summarizer"})), nil)

	rec := postExecute(h, `{"agentId":"a1","query":"do a thing"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
		Query   string `json:"query"`
		Agent   struct {
			ID string `json:"id"`
		} `json:"agent"`
		Result struct {
			Summary string `json:"summary"`
			Output  string `json:"output"`
			TraceID string `json:"traceId"`
		} `json:"result"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.Agent.ID != "a1" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Message != "Execution triggered for Summarizer" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Query != "do a thing" {
		t.Errorf("unexpected query echo %q", resp.Query)
	}
	if resp.Result.Output != PlaceholderOutput || len(resp.Result.TraceID) != 8 {
		t.Errorf("unexpected result: %+v", resp.Result)
	}
}

func TestExecuteHandlerLegacyIDField(t *testing.T) {
	h := NewHandler(NewService(getterWith(&models.Agent{ID: "a1", Name: "Summarizer"})), nil)

	rec := postExecute(h, `{"id":"a1","query":"q"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("legacy id field should resolve the agent, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExecuteHandlerMissingAgentID(t *testing.T) {
	h := NewHandler(NewService(getterWith()), nil)

	rec := postExecute(h, `{"query":"q"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "agentId is required" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExecuteHandlerUnknownAgent(t *testing.T) {
	h := NewHandler(NewService(getterWith()), nil)

	rec := postExecute(h, `{"agentId":"nope"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "agent not found" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExecuteHandlerLookupFailure(t *testing.T) {
	h := NewHandler(NewService(&mockAgentGetter{err: errors.New("boom")}), nil)

	rec := postExecute(h, `{"agentId":"a1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "agent lookup failed: boom" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExecuteHandlerInvalidJSON(t *testing.T) {
	h := NewHandler(NewService(getterWith()), nil)

	rec := postExecute(h, `{"agentId":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "invalid JSON" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExecuteHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(NewService(getterWith()), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/execute", nil)
	rec := httptest.NewRecorder()
	h.Execute(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
