package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeNotFound, "Todo not found", http.StatusNotFound)
	if err.Error() != "NOT_FOUND: Todo not found" {
		t.Errorf("unexpected string: %q", err.Error())
	}

	withCause := Internal(fmt.Errorf("disk full"))
	if withCause.Error() != "INTERNAL_ERROR: Internal server error (cause: disk full)" {
		t.Errorf("unexpected string: %q", withCause.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestMethodUnavailable_Message(t *testing.T) {
	err := MethodUnavailable("Signup", "API key")
	if err.Message != "Signup not available with API key authentication" {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
}

func TestInvalidToken_Detail(t *testing.T) {
	if got := InvalidToken("signature is invalid").Message; got != "Invalid JWT token: signature is invalid" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := InvalidToken("").Message; got != "Invalid JWT token" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestServerMisconfigured_Is500(t *testing.T) {
	err := ServerMisconfigured()
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Message != "Invalid authentication method" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(TokenExpired())
	if !ok || appErr.Code != ErrCodeTokenExpired {
		t.Error("expected AsAppError to recover the typed error")
	}

	wrapped := fmt.Errorf("context: %w", NotFound("Todo not found"))
	appErr, ok = AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeNotFound {
		t.Error("expected AsAppError to see through wrapping")
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("plain errors are not AppErrors")
	}
}

func TestToResponse_Shape(t *testing.T) {
	resp := Validation("bad input").ToResponse()
	if resp.Error != "bad input" {
		t.Errorf("unexpected error field: %q", resp.Error)
	}
	if resp.Code != ErrCodeValidation {
		t.Errorf("unexpected code: %q", resp.Code)
	}
}
