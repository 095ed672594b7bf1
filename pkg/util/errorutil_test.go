package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := ToDomainError(nil); got != nil {
			t.Errorf("got %v", got)
		}
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		src := NewConflict("duplicate phone", map[string]any{"phone": "+254712345678"})
		got := ToDomainError(src)
		if got.Code != "CONFLICT" || got.HTTPStatus != http.StatusConflict {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("wrapped domain errors are unwrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("saving order: %w", NewNotFound("order", nil))
		got := ToDomainError(wrapped)
		if got.Code != "NOT_FOUND" {
			t.Errorf("Code = %q; want NOT_FOUND", got.Code)
		}
	})

	t.Run("pgx no rows maps to not found", func(t *testing.T) {
		got := ToDomainError(pgx.ErrNoRows)
		if got.Code != "NOT_FOUND" || got.HTTPStatus != http.StatusNotFound {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		got := ToDomainError(errors.New("boom"))
		if got.Code != "INTERNAL_ERROR" || got.HTTPStatus != http.StatusInternalServerError {
			t.Errorf("got %+v", got)
		}
		if !errors.Is(got, got.Err) {
			t.Error("cause is not preserved")
		}
	})
}

func TestDomainErrorMessage(t *testing.T) {
	plain := NewForbidden("admin only")
	if plain.Error() != "admin only" {
		t.Errorf("Error() = %q", plain.Error())
	}
	withCause := NewInternalError(errors.New("pool closed"))
	if withCause.Error() != "internal server error: pool closed" {
		t.Errorf("Error() = %q", withCause.Error())
	}
}
