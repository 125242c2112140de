package service

import (
	"context"

	"github.com/vbonduro/cashdrop/internal/domain"
)

// The services depend on these interfaces, implemented by the sqlx stores.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go

type DrawerRepository interface {
	Create(ctx context.Context, d *domain.CashDrawer) (*domain.CashDrawer, error)
	GetByID(ctx context.Context, id int64) (*domain.CashDrawer, error)
	ListByDateRange(ctx context.Context, r domain.DateRange, userID *int64) ([]*domain.CashDrawer, error)
	Update(ctx context.Context, d *domain.CashDrawer) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
}

type DropRepository interface {
	Create(ctx context.Context, d *domain.CashDrop) (*domain.CashDrop, error)
	GetByID(ctx context.Context, id int64) (*domain.CashDrop, error)
	FindActive(ctx context.Context, key domain.ShiftKey) (*domain.CashDrop, error)
	FindByDrawer(ctx context.Context, drawerID int64) (*domain.CashDrop, error)
	ListByDateRange(ctx context.Context, r domain.DateRange, userID *int64) ([]*domain.CashDrop, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.CashDrop, error)
	ListByBatchNumbers(ctx context.Context, batches []string) ([]*domain.CashDrop, error)
	Update(ctx context.Context, d *domain.CashDrop) error
	UpdateDenominations(ctx context.Context, d *domain.CashDrop) error
	Ignore(ctx context.Context, id int64, reason string) error
	MarkBankDropped(ctx context.Context, id int64, batch string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type ReconcilerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReconcilerView, error)
	List(ctx context.Context, f domain.ReconcilerFilter) ([]*domain.ReconcilerView, error)
	Reconcile(ctx context.Context, rec *domain.Reconciler, drop *domain.CashDrop) error
}

type BatchRepository interface {
	Exists(ctx context.Context, batchNumber string) (bool, error)
	Record(ctx context.Context, b *domain.BankDropBatch) error
	List(ctx context.Context) ([]*domain.BankDropBatch, error)
}
