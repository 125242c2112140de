package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/vbonduro/cashdrop/internal/db"
)

var (
	// ErrDuplicate is returned when a write violates a unique constraint,
	// such as a second active drop for the same shift.
	ErrDuplicate = errors.New("duplicate entry")
	ErrNotFound  = errors.New("not found")
)

var denominationColumns = []string{
	"hundreds", "fifties", "twenties", "tens", "fives", "twos", "ones",
	"half_dollars", "quarters", "dimes", "nickels", "pennies",
}

// denomSelect lists the denomination columns qualified by a table alias.
func denomSelect(alias string) string {
	cols := make([]string, len(denominationColumns))
	for i, c := range denominationColumns {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// denomAssign renders "col = :col" pairs for named updates.
func denomAssign() string {
	cols := make([]string, len(denominationColumns))
	for i, c := range denominationColumns {
		cols[i] = c + " = :" + c
	}
	return strings.Join(cols, ", ")
}

func denomInsert() (cols, params string) {
	named := make([]string, len(denominationColumns))
	for i, c := range denominationColumns {
		named[i] = ":" + c
	}
	return strings.Join(denominationColumns, ", "), strings.Join(named, ", ")
}

func writeErr(op string, err error) error {
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("failed to %s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func expectAffected(res interface{ RowsAffected() (int64, error) }, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// withTx runs fn in a transaction, committing only when fn succeeds.
func withTx(ctx context.Context, d *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
