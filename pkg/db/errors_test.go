package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "sequence_counters_pkey"}
	pgOther := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "postgres unique violation", err: pgDup, want: true},
		{name: "postgres unique violation wrapped", err: fmt.Errorf("create: %w", pgDup), want: true},
		{name: "postgres unique violation constraint match", err: pgDup, constraint: "sequence_counters_pkey", want: true},
		{name: "postgres unique violation constraint mismatch", err: pgDup, constraint: "projects_code_key", want: false},
		{name: "postgres foreign key violation", err: pgOther, want: false},
		{name: "sqlite unique violation", err: errors.New("UNIQUE constraint failed: projects.code"), want: true},
		{name: "generic duplicate key text", err: errors.New(`duplicate key value violates unique constraint "projects_code_key"`), want: true},
		{name: "unrelated error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err, tt.constraint); got != tt.want {
				t.Fatalf("IsUniqueViolation(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}
