package catalog

import (
	"strings"

	"github.com/agentmarket/backend/internal/models"
)

// Display phases. Loaded with zero visible agents is a valid state distinct
// from Failed; an empty list is never shown in place of an error.
const (
	PhaseLoading = "loading"
	PhaseFailed  = "error"
	PhaseLoaded  = "loaded"
)

// Snapshot is an immutable view state. Every change goes through Apply, so
// there is no shared mutable state between the events that drive the view.
type Snapshot struct {
	Phase    string
	Category string
	Agents   []models.RankedAgent
	Err      string
}

// NewSnapshot returns the initial state: loading, all categories selected.
func NewSnapshot() Snapshot {
	return Snapshot{Phase: PhaseLoading, Category: models.CategoryAll}
}

// Event is one of the four inputs that advance a Snapshot.
type Event interface {
	isEvent()
}

type FetchStarted struct{}

type FetchSucceeded struct {
	Agents []models.RankedAgent
}

type FetchFailed struct {
	Message string
}

type SelectCategory struct {
	Category string
}

func (FetchStarted) isEvent()   {}
func (FetchSucceeded) isEvent() {}
func (FetchFailed) isEvent()    {}
func (SelectCategory) isEvent() {}

// Apply returns the successor state for the event. The receiver is a value,
// so prior snapshots are never mutated.
func (s Snapshot) Apply(ev Event) Snapshot {
	switch e := ev.(type) {
	case FetchStarted:
		s.Phase = PhaseLoading
		s.Agents = nil
		s.Err = ""
	case FetchSucceeded:
		s.Phase = PhaseLoaded
		s.Agents = e.Agents
		s.Err = ""
	case FetchFailed:
		s.Phase = PhaseFailed
		s.Agents = nil
		s.Err = e.Message
	case SelectCategory:
		cat := strings.TrimSpace(e.Category)
		if cat == "" {
			cat = models.CategoryAll
		}
		s.Category = cat
	}
	return s
}

// Listing pairs a ranked agent with its 1-based position inside the current
// filter. Rank is global and survives filtering; Position does not.
type Listing struct {
	models.RankedAgent
	Position int `json:"position"`
}

// Visible returns the agents matching the selected category in global rank
// order, each with its within-filter position.
func (s Snapshot) Visible() []Listing {
	out := make([]Listing, 0, len(s.Agents))
	for _, ag := range s.Agents {
		if s.Category != models.CategoryAll && ag.Category != s.Category {
			continue
		}
		out = append(out, Listing{RankedAgent: ag, Position: len(out) + 1})
	}
	return out
}
