package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentmarket/backend/internal/models"
)

func newTestHandler(lister AgentLister) *Handler {
	return NewHandler(NewService(lister), nil)
}

func TestListAgentsSuccess(t *testing.T) {
	lister := &mockAgentLister{agents: []models.Agent{
		{ID: "a", Name: "Agent a", Category: models.CategoryResearch, RatingAvg: f64Ptr(4.0), RatingCount: intPtr(2)},
		{ID: "b", Name: "Agent b", Category: models.CategoryCoding, RatingAvg: f64Ptr(5.0), RatingCount: intPtr(1)},
	}}
	h := newTestHandler(lister)

	rec := httptest.NewRecorder()
	h.ListAgents(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		OK       bool   `json:"ok"`
		Category string `json:"category"`
		Count    int    `json:"count"`
		Agents   []struct {
			ID       string `json:"id"`
			Rank     int    `json:"rank"`
			Position int    `json:"position"`
		} `json:"agents"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.Category != models.CategoryAll || resp.Count != 2 {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Agents[0].ID != "b" || resp.Agents[0].Rank != 1 || resp.Agents[0].Position != 1 {
		t.Errorf("expected b ranked first, got %+v", resp.Agents[0])
	}
}

func TestListAgentsCategoryFilter(t *testing.T) {
	lister := &mockAgentLister{agents: []models.Agent{
		{ID: "a", Category: models.CategoryResearch, RatingAvg: f64Ptr(5.0)},
		{ID: "b", Category: models.CategoryCoding, RatingAvg: f64Ptr(4.0)},
		{ID: "c", Category: models.CategoryCoding, RatingAvg: f64Ptr(3.0)},
	}}
	h := newTestHandler(lister)

	rec := httptest.NewRecorder()
	h.ListAgents(rec, httptest.NewRequest(http.MethodGet, "/api/agents?category=coding", nil))

	var resp struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
		Agents   []struct {
			ID       string `json:"id"`
			Rank     int    `json:"rank"`
			Position int    `json:"position"`
		} `json:"agents"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Category != models.CategoryCoding || resp.Count != 2 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	// b holds global rank 2; inside the coding filter it sits at position 1.
	if resp.Agents[0].ID != "b" || resp.Agents[0].Rank != 2 || resp.Agents[0].Position != 1 {
		t.Errorf("expected b/2/1, got %+v", resp.Agents[0])
	}
}

func TestListAgentsStorageFailure(t *testing.T) {
	h := newTestHandler(&mockAgentLister{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	h.ListAgents(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OK || resp.Error != "db down" {
		t.Errorf("unexpected error body: %+v", resp)
	}
}

func TestListAgentsMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&mockAgentLister{})

	rec := httptest.NewRecorder()
	h.ListAgents(rec, httptest.NewRequest(http.MethodPost, "/api/agents", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestListCategoriesIncludesAll(t *testing.T) {
	h := newTestHandler(&mockAgentLister{})

	rec := httptest.NewRecorder()
	h.ListCategories(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) == 0 || resp.Categories[0] != models.CategoryAll {
		t.Errorf("expected %q first, got %v", models.CategoryAll, resp.Categories)
	}
}
