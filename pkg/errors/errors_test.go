package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("trim", "123456789012")

	if err.Error() != "trim with ID 123456789012 not found" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound) to be true")
	}
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to be true")
	}
	if IsValidationError(err) {
		t.Error("expected IsValidationError to be false")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("profile", "bogus", "unknown weight profile")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput) to be true")
	}
	if !IsValidationError(err) {
		t.Error("expected IsValidationError to be true")
	}
	if err.Error() != "validation failed for field profile: unknown weight profile" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		status      int
		unavailable bool
	}{
		{200, false},
		{400, false},
		{404, false},
		{500, true},
		{503, true},
	}

	for _, tt := range tests {
		err := NewAPIError("xcatalog", tt.status, "boom")
		if got := IsProviderUnavailable(err); got != tt.unavailable {
			t.Errorf("status %d: IsProviderUnavailable = %v, want %v", tt.status, got, tt.unavailable)
		}
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewLoadError("catalogue", "it", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	if WrapValidation("field", nil) != nil {
		t.Error("WrapValidation(nil) should return nil")
	}
	if WrapIO("read", "/tmp/x", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapAPI("xcatalog", 500, nil) != nil {
		t.Error("WrapAPI(nil) should return nil")
	}
}

func TestWrapAPIPreservesCause(t *testing.T) {
	cause := fmt.Errorf("decode: %w", ErrTimeout)
	err := WrapAPI("catalogue", 0, cause)

	if !errors.Is(err, ErrTimeout) {
		t.Error("expected wrapped timeout to be reachable via errors.Is")
	}
}
