package embedding

import (
	"errors"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New("", "")
	if !errors.Is(err, ErrAPIKeyNotSet) {
		t.Fatalf("expected ErrAPIKeyNotSet, got %v", err)
	}
}

func TestNewFallsBackToEnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	c, err := New("", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("expected model %q, got %q", DefaultModel, c.Model())
	}
}

func TestNewExplicitModel(t *testing.T) {
	c, err := New("test-key", "text-embedding-3-large")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != "text-embedding-3-large" {
		t.Errorf("unexpected model %q", c.Model())
	}
}
