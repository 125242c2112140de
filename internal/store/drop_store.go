package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vbonduro/cashdrop/internal/domain"
)

var dropSelect = `
	SELECT c.id, c.user_id, u.name AS user_name, c.drawer_entry_id, c.workstation, c.shift_number,
		c.date, c.drop_amount, ` + denomSelect("c") + `, c.ws_label_amount, c.variance,
		c.label_image, c.notes, c.status, c.ignored, c.ignore_reason, c.bank_dropped,
		c.bank_drop_batch_number, c.submitted_at, c.created_at
	FROM cash_drops c
	JOIN users u ON u.id = c.user_id`

// ensureReconciler inserts the reconciler paired with a submitted drop unless
// one already exists. The reconciler is stamped with the drop's submit time.
const ensureReconciler = `
	INSERT INTO cash_drop_reconcilers (user_id, drop_entry_id, workstation, shift_number, date, created_at)
	SELECT user_id, id, workstation, shift_number, date, COALESCE(submitted_at, created_at)
	FROM cash_drops
	WHERE id = ? AND NOT EXISTS (SELECT 1 FROM cash_drop_reconcilers WHERE drop_entry_id = ?)`

type DropStore struct {
	db *sqlx.DB
}

func NewDropStore(db *sqlx.DB) *DropStore {
	return &DropStore{db: db}
}

// Create inserts d. A submitted drop gets its reconciler in the same
// transaction.
func (s *DropStore) Create(ctx context.Context, d *domain.CashDrop) (*domain.CashDrop, error) {
	cols, params := denomInsert()
	var id int64
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			INSERT INTO cash_drops (user_id, drawer_entry_id, workstation, shift_number, date, drop_amount,
				`+cols+`, ws_label_amount, variance, label_image, notes, status, submitted_at, created_at)
			VALUES (:user_id, :drawer_entry_id, :workstation, :shift_number, :date, :drop_amount,
				`+params+`, :ws_label_amount, :variance, :label_image, :notes, :status, :submitted_at, :created_at)
		`, d)
		if err != nil {
			return writeErr("create cash drop", err)
		}

		if id, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}

		if d.Status == domain.StatusSubmitted {
			if _, err := tx.ExecContext(ctx, ensureReconciler, id, id); err != nil {
				return writeErr("create cash drop reconciler", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *DropStore) GetByID(ctx context.Context, id int64) (*domain.CashDrop, error) {
	return s.getOne(ctx, ` WHERE c.id = ?`, id)
}

// FindActive returns the non-ignored drop holding the shift slot, or nil.
func (s *DropStore) FindActive(ctx context.Context, key domain.ShiftKey) (*domain.CashDrop, error) {
	return s.getOne(ctx, ` WHERE c.workstation = ? AND c.shift_number = ? AND c.date = ? AND c.ignored = 0`,
		key.Workstation, key.ShiftNumber, key.Date)
}

// FindByDrawer returns the drop linked to drawerID, or nil. Ignored drops
// keep their link.
func (s *DropStore) FindByDrawer(ctx context.Context, drawerID int64) (*domain.CashDrop, error) {
	return s.getOne(ctx, ` WHERE c.drawer_entry_id = ?`, drawerID)
}

func (s *DropStore) getOne(ctx context.Context, where string, args ...any) (*domain.CashDrop, error) {
	d := &domain.CashDrop{}
	err := s.db.GetContext(ctx, d, dropSelect+where, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop: %w", err)
	}
	return d, nil
}

// ListByDateRange returns drops dated within r, newest first, optionally
// restricted to one owner.
func (s *DropStore) ListByDateRange(ctx context.Context, r domain.DateRange, userID *int64) ([]*domain.CashDrop, error) {
	query := dropSelect + ` WHERE c.date >= ? AND c.date <= ?`
	args := []any{r.From, r.To}
	if userID != nil {
		query += ` AND c.user_id = ?`
		args = append(args, *userID)
	}
	query += ` ORDER BY c.date DESC, c.id DESC`
	return s.list(ctx, query, args...)
}

func (s *DropStore) ListByIDs(ctx context.Context, ids []int64) ([]*domain.CashDrop, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(dropSelect+` WHERE c.id IN (?) ORDER BY c.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build cash drop query: %w", err)
	}
	return s.list(ctx, s.db.Rebind(query), args...)
}

func (s *DropStore) ListByBatchNumbers(ctx context.Context, batches []string) ([]*domain.CashDrop, error) {
	if len(batches) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(dropSelect+` WHERE c.bank_drop_batch_number IN (?) ORDER BY c.id`, batches)
	if err != nil {
		return nil, fmt.Errorf("failed to build cash drop query: %w", err)
	}
	return s.list(ctx, s.db.Rebind(query), args...)
}

func (s *DropStore) list(ctx context.Context, query string, args ...any) ([]*domain.CashDrop, error) {
	var drops []*domain.CashDrop
	if err := s.db.SelectContext(ctx, &drops, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list cash drops: %w", err)
	}
	return drops, nil
}

// Update writes the editable columns of d. submitted_at is only ever set
// once. When d is submitted its reconciler is created if missing and kept in
// step with the drop's shift key.
func (s *DropStore) Update(ctx context.Context, d *domain.CashDrop) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			UPDATE cash_drops SET drawer_entry_id = :drawer_entry_id, workstation = :workstation,
				shift_number = :shift_number, date = :date, drop_amount = :drop_amount, `+denomAssign()+`,
				ws_label_amount = :ws_label_amount, variance = :variance, label_image = :label_image,
				notes = :notes, status = :status, submitted_at = COALESCE(submitted_at, :submitted_at)
			WHERE id = :id
		`, d)
		if err != nil {
			return writeErr("update cash drop", err)
		}
		if err := expectAffected(result, "cash drop"); err != nil {
			return err
		}

		if d.Status != domain.StatusSubmitted {
			return nil
		}
		if _, err := tx.ExecContext(ctx, ensureReconciler, d.ID, d.ID); err != nil {
			return writeErr("create cash drop reconciler", err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE cash_drop_reconcilers SET workstation = ?, shift_number = ?, date = ?
			WHERE drop_entry_id = ?
		`, d.Workstation, d.ShiftNumber, d.Date, d.ID); err != nil {
			return fmt.Errorf("failed to sync cash drop reconciler: %w", err)
		}
		return nil
	})
}

// UpdateDenominations overwrites the counts and derived amounts of a drop.
func (s *DropStore) UpdateDenominations(ctx context.Context, d *domain.CashDrop) error {
	result, err := s.db.NamedExecContext(ctx, `
		UPDATE cash_drops SET `+denomAssign()+`, drop_amount = :drop_amount, variance = :variance
		WHERE id = :id
	`, d)
	if err != nil {
		return fmt.Errorf("failed to update cash drop denominations: %w", err)
	}
	return expectAffected(result, "cash drop")
}

func (s *DropStore) Ignore(ctx context.Context, id int64, reason string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE cash_drops SET ignored = 1, status = ?, ignore_reason = ? WHERE id = ?
	`, domain.StatusIgnored, reason, id)
	if err != nil {
		return fmt.Errorf("failed to ignore cash drop: %w", err)
	}
	return expectAffected(result, "cash drop")
}

// MarkBankDropped stamps a reconciled drop with batch. It reports false when
// the drop is missing, not reconciled or already bank dropped.
func (s *DropStore) MarkBankDropped(ctx context.Context, id int64, batch string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE cash_drops SET bank_dropped = 1, bank_drop_batch_number = ?, status = ?
		WHERE id = ? AND status = ? AND bank_dropped = 0
	`, batch, domain.StatusBankDropped, id, domain.StatusReconciled)
	if err != nil {
		return false, fmt.Errorf("failed to mark cash drop bank dropped: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *DropStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cash_drops WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cash drop: %w", err)
	}
	return expectAffected(result, "cash drop")
}
