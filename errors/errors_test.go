package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	err := ErrNotFound("timeline/2024")
	if err.HTTPCode != http.StatusNotFound {
		t.Errorf("http code = %d", err.HTTPCode)
	}
	if err.Code != ErrorCode_NOT_FOUND {
		t.Errorf("code = %v", err.Code)
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrFetchFailed("timeline/2024", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected the cause to be reachable through Unwrap")
	}
}

func TestAppErrorAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrParseFailed("week-1.md", fmt.Errorf("bad markup")))
	var appErr AppError
	if !stderrors.As(wrapped, &appErr) {
		t.Fatal("expected As to find the AppError")
	}
	if appErr.Code != ErrorCode_PARSE_FAILED {
		t.Errorf("code = %v", appErr.Code)
	}
}

func TestWithDetail(t *testing.T) {
	err := ErrInvalidArgument("year is required").WithDetail("field", "year")
	if err.Details["field"] != "year" {
		t.Fatalf("details = %v", err.Details)
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCode_GITHUB_FETCH_FAILED.String(); got != "GITHUB_FETCH_FAILED" {
		t.Errorf("String() = %q", got)
	}
	if got := ErrorCode(9999).String(); got != "UNKNOWN" {
		t.Errorf("unknown code = %q", got)
	}
}
