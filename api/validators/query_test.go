package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/devfolio/devfolio-backend/pkg/errors"
)

func TestParseQueryIntDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/list", nil)
	got, err := ParseQueryInt(r, "skip", 0, 0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected default 0, got %d", got)
	}
}

func TestParseQueryIntRejectsNonNumeric(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/list?limit=abc", nil)
	_, err := ParseQueryInt(r, "limit", 100, 1, 500)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntRejectsOutOfRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/list?limit=9999", nil)
	_, err := ParseQueryInt(r, "limit", 100, 1, 500)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRequireQueryID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/projects/7?user_id=42", nil)
	got, err := RequireQueryID(r, "user_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestRequireQueryIDMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/projects/7", nil)
	_, err := RequireQueryID(r, "user_id")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParsePathIDRejectsZero(t *testing.T) {
	if _, err := ParsePathID("0", "userId"); err == nil {
		t.Fatal("expected error for zero id")
	}
	if _, err := ParsePathID("abc", "userId"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	got, err := ParsePathID("15", "userId")
	if err != nil || got != 15 {
		t.Fatalf("expected 15, got %d (%v)", got, err)
	}
}
