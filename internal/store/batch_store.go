package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vbonduro/cashdrop/internal/domain"
)

type BatchStore struct {
	db *sqlx.DB
}

func NewBatchStore(db *sqlx.DB) *BatchStore {
	return &BatchStore{db: db}
}

func (s *BatchStore) Exists(ctx context.Context, batchNumber string) (bool, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM bank_drop_batches WHERE batch_number = ?`, batchNumber)
	if err != nil {
		return false, fmt.Errorf("failed to check bank drop batch: %w", err)
	}
	return n > 0, nil
}

// Record inserts the batch summary and its per-drop rows together.
func (s *BatchStore) Record(ctx context.Context, b *domain.BankDropBatch) error {
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			INSERT INTO bank_drop_batches (batch_number, drop_count, total_amount, created_by, created_at)
			VALUES (:batch_number, :drop_count, :total_amount, :created_by, :created_at)
		`, b)
		if err != nil {
			return writeErr("record bank drop batch", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}

		for _, item := range b.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO bank_drop_batch_items (batch_id, drop_id, drop_amount) VALUES (?, ?, ?)
			`, id, item.DropID, item.DropAmount); err != nil {
				return fmt.Errorf("failed to record bank drop batch item: %w", err)
			}
		}
		b.ID = id
		return nil
	})
}

// List returns every recorded batch with its items, newest first.
func (s *BatchStore) List(ctx context.Context) ([]*domain.BankDropBatch, error) {
	var batches []*domain.BankDropBatch
	if err := s.db.SelectContext(ctx, &batches, `
		SELECT id, batch_number, drop_count, total_amount, created_by, created_at
		FROM bank_drop_batches
		ORDER BY created_at DESC, id DESC
	`); err != nil {
		return nil, fmt.Errorf("failed to list bank drop batches: %w", err)
	}
	if len(batches) == 0 {
		return batches, nil
	}

	var items []struct {
		BatchID int64 `db:"batch_id"`
		domain.BankDropBatchItem
	}
	if err := s.db.SelectContext(ctx, &items, `
		SELECT batch_id, drop_id, drop_amount FROM bank_drop_batch_items ORDER BY id
	`); err != nil {
		return nil, fmt.Errorf("failed to list bank drop batch items: %w", err)
	}

	byID := make(map[int64]*domain.BankDropBatch, len(batches))
	for _, b := range batches {
		byID[b.ID] = b
	}
	for _, it := range items {
		if b, ok := byID[it.BatchID]; ok {
			b.Items = append(b.Items, it.BankDropBatchItem)
		}
	}
	return batches, nil
}
