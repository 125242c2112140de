package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vbonduro/cashdrop/internal/domain"
)

var drawerSelect = `
	SELECT d.id, d.user_id, u.name AS user_name, d.workstation, d.shift_number, d.date,
		d.starting_cash, ` + denomSelect("d") + `, d.total_cash, d.status, d.created_at
	FROM cash_drawers d
	JOIN users u ON u.id = d.user_id`

type DrawerStore struct {
	db *sqlx.DB
}

func NewDrawerStore(db *sqlx.DB) *DrawerStore {
	return &DrawerStore{db: db}
}

func (s *DrawerStore) Create(ctx context.Context, d *domain.CashDrawer) (*domain.CashDrawer, error) {
	cols, params := denomInsert()
	result, err := s.db.NamedExecContext(ctx, `
		INSERT INTO cash_drawers (user_id, workstation, shift_number, date, starting_cash, `+cols+`,
			total_cash, status, created_at)
		VALUES (:user_id, :workstation, :shift_number, :date, :starting_cash, `+params+`,
			:total_cash, :status, :created_at)
	`, d)
	if err != nil {
		return nil, writeErr("create cash drawer", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *DrawerStore) GetByID(ctx context.Context, id int64) (*domain.CashDrawer, error) {
	d := &domain.CashDrawer{}
	err := s.db.GetContext(ctx, d, drawerSelect+` WHERE d.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drawer: %w", err)
	}
	return d, nil
}

// ListByDateRange returns drawers dated within r, newest first. A non-nil
// userID restricts the result to that owner.
func (s *DrawerStore) ListByDateRange(ctx context.Context, r domain.DateRange, userID *int64) ([]*domain.CashDrawer, error) {
	query := drawerSelect + ` WHERE d.date >= ? AND d.date <= ?`
	args := []any{r.From, r.To}
	if userID != nil {
		query += ` AND d.user_id = ?`
		args = append(args, *userID)
	}
	query += ` ORDER BY d.date DESC, d.id DESC`

	var drawers []*domain.CashDrawer
	if err := s.db.SelectContext(ctx, &drawers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list cash drawers: %w", err)
	}
	return drawers, nil
}

// Update writes every mutable column of d.
func (s *DrawerStore) Update(ctx context.Context, d *domain.CashDrawer) error {
	result, err := s.db.NamedExecContext(ctx, `
		UPDATE cash_drawers SET workstation = :workstation, shift_number = :shift_number, date = :date,
			starting_cash = :starting_cash, `+denomAssign()+`, total_cash = :total_cash, status = :status
		WHERE id = :id
	`, d)
	if err != nil {
		return writeErr("update cash drawer", err)
	}
	return expectAffected(result, "cash drawer")
}

func (s *DrawerStore) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	result, err := s.db.ExecContext(ctx, `UPDATE cash_drawers SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return writeErr("update cash drawer status", err)
	}
	return expectAffected(result, "cash drawer")
}

func (s *DrawerStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cash_drawers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cash drawer: %w", err)
	}
	return expectAffected(result, "cash drawer")
}
