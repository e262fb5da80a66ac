package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema.sql
var schemaSQL string

// uniqueViolation is the SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

// Migrate creates the collections and their indexes when missing.
func Migrate(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err was raised by a unique index.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
