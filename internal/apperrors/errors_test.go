package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationMessagePassthrough(t *testing.T) {
	err := Validation("rating must be an integer between 1 and 5")
	if err.Error() != "rating must be an integer between 1 and 5" {
		t.Fatalf("message must be verbatim, got %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("IsValidation should match")
	}
	if IsStorage(err) {
		t.Error("IsStorage must not match a validation error")
	}
}

func TestValidationMatchesWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", Validation("agentId is required"))
	if !IsValidation(err) {
		t.Fatal("IsValidation should match through wrapping")
	}
}

func TestStorageWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("list agents", cause)
	if err.Error() != "connection refused" {
		t.Fatalf("store message must pass through, got %q", err.Error())
	}
	if !IsStorage(err) {
		t.Error("IsStorage should match")
	}
	if !errors.Is(err, cause) {
		t.Error("cause must remain reachable via errors.Is")
	}
}
