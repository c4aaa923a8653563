package database

import (
	"errors"
	"fmt"
	"testing"

	"construction_backend/internals/helpers/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres 23505", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other code", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", errors.New("constraint failed: UNIQUE constraint failed: attendances.worker_id, attendances.attendance_date (2067)"), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateKey(tt.err); got != tt.want {
				t.Fatalf("IsDuplicateKey(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapWriteError(t *testing.T) {
	if WrapWriteError(nil) != nil {
		t.Fatal("nil must stay nil")
	}
	err := WrapWriteError(gorm.ErrDuplicatedKey)
	if !errors.Is(err, apperr.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	plain := errors.New("boom")
	if WrapWriteError(plain) != plain {
		t.Fatal("non-duplicate errors must pass through unchanged")
	}
}

func TestSqliteDSN(t *testing.T) {
	if got := sqliteDSN("a.db"); got != "a.db?_pragma=foreign_keys(1)" {
		t.Fatalf("got %q", got)
	}
	if got := sqliteDSN("file:a.db?cache=shared"); got != "file:a.db?cache=shared&_pragma=foreign_keys(1)" {
		t.Fatalf("got %q", got)
	}
}
