package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vbonduro/cashdrop/internal/domain"
)

var reconcilerSelect = `
	SELECT r.id, r.user_id, r.drop_entry_id, r.workstation, r.shift_number, r.date,
		r.admin_count_amount, r.is_reconciled, r.reconcile_delta, r.notes, r.created_at,
		u.name AS user_name, c.drop_amount AS system_drop_amount, ` + denomSelect("c") + `,
		c.ws_label_amount, c.variance, c.label_image, c.notes AS drop_notes, c.status AS drop_status,
		c.bank_dropped, c.bank_drop_batch_number, c.submitted_at
	FROM cash_drop_reconcilers r
	JOIN cash_drops c ON c.id = r.drop_entry_id
	JOIN users u ON u.id = c.user_id`

type ReconcilerStore struct {
	db *sqlx.DB
}

func NewReconcilerStore(db *sqlx.DB) *ReconcilerStore {
	return &ReconcilerStore{db: db}
}

func (s *ReconcilerStore) GetByID(ctx context.Context, id int64) (*domain.ReconcilerView, error) {
	v := &domain.ReconcilerView{}
	err := s.db.GetContext(ctx, v, reconcilerSelect+` WHERE r.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop reconciler: %w", err)
	}
	return v, nil
}

// List returns reconcilers of live drops (not drafted, not ignored) that
// match f, newest first.
func (s *ReconcilerStore) List(ctx context.Context, f domain.ReconcilerFilter) ([]*domain.ReconcilerView, error) {
	query := reconcilerSelect + ` WHERE c.ignored = 0 AND c.status NOT IN (?, ?)`
	args := []any{domain.StatusDrafted, domain.StatusIgnored}

	if f.Range != nil {
		query += ` AND r.date >= ? AND r.date <= ?`
		args = append(args, f.Range.From, f.Range.To)
	}
	if len(f.BatchNumbers) > 0 {
		query += ` AND c.bank_drop_batch_number IN (?)`
		args = append(args, f.BatchNumbers)
	}
	if f.UserID != nil {
		query += ` AND c.user_id = ?`
		args = append(args, *f.UserID)
	}
	if f.OnlyReconciled {
		query += ` AND r.is_reconciled = 1`
	}
	query += ` ORDER BY r.date DESC, r.id DESC`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build reconciler query: %w", err)
	}

	var views []*domain.ReconcilerView
	if err := s.db.SelectContext(ctx, &views, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list cash drop reconcilers: %w", err)
	}
	return views, nil
}

// Reconcile stores the admin count on rec and writes the drop's resulting
// status, counts and amounts in one transaction.
func (s *ReconcilerStore) Reconcile(ctx context.Context, rec *domain.Reconciler, drop *domain.CashDrop) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			UPDATE cash_drop_reconcilers SET admin_count_amount = :admin_count_amount,
				is_reconciled = :is_reconciled, reconcile_delta = :reconcile_delta, notes = :notes
			WHERE id = :id
		`, rec)
		if err != nil {
			return fmt.Errorf("failed to update cash drop reconciler: %w", err)
		}
		if err := expectAffected(result, "cash drop reconciler"); err != nil {
			return err
		}

		result, err = tx.NamedExecContext(ctx, `
			UPDATE cash_drops SET status = :status, drop_amount = :drop_amount, `+denomAssign()+`,
				variance = :variance
			WHERE id = :id
		`, drop)
		if err != nil {
			return fmt.Errorf("failed to update reconciled cash drop: %w", err)
		}
		return expectAffected(result, "cash drop")
	})
}
