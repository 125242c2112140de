package store

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/db"
	"github.com/vbonduro/cashdrop/internal/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func seedUser(t *testing.T, d *sqlx.DB, email string, admin bool) *domain.User {
	t.Helper()
	u, err := NewUserStore(d).Create(context.Background(), &domain.User{Email: email, Name: email, IsAdmin: admin})
	require.NoError(t, err)
	return u
}

func newDrop(userID int64, ws, date string, status domain.Status, counts domain.Denominations) *domain.CashDrop {
	d := &domain.CashDrop{
		UserID:        userID,
		Workstation:   ws,
		ShiftNumber:   "1",
		Date:          date,
		Denominations: counts,
		Status:        status,
		CreatedAt:     date + " 09:00:00",
	}
	if status == domain.StatusSubmitted {
		at := date + " 09:00:00"
		d.SubmittedAt = &at
	}
	d.Recalculate()
	return d
}

func TestUserStore(t *testing.T) {
	d := openTestDB(t)
	s := NewUserStore(d)
	ctx := context.Background()

	u, err := s.Create(ctx, &domain.User{Email: "a@example.com", Name: "Alice", IsAdmin: true})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.True(t, u.IsAdmin)
	assert.NotEmpty(t, u.CreatedAt)

	byEmail, err := s.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = s.Create(ctx, &domain.User{Email: "a@example.com", Name: "Again"})
	assert.ErrorIs(t, err, ErrDuplicate)

	missing, err := s.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDenomHelpers(t *testing.T) {
	assert.Contains(t, denomSelect("c"), "c.half_dollars")
	assert.Contains(t, denomAssign(), "pennies = :pennies")
	cols, params := denomInsert()
	assert.Contains(t, cols, "hundreds")
	assert.Contains(t, params, ":hundreds")
}

func TestBatchStore(t *testing.T) {
	d := openTestDB(t)
	s := NewBatchStore(d)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "BATCH-1")
	require.NoError(t, err)
	assert.False(t, exists)

	b := &domain.BankDropBatch{
		BatchNumber: "BATCH-1",
		DropCount:   2,
		TotalAmount: decimal.RequireFromString("150.25"),
		CreatedBy:   1,
		CreatedAt:   "2025-03-02 10:00:00",
		Items: []domain.BankDropBatchItem{
			{DropID: 1, DropAmount: decimal.NewFromInt(100)},
			{DropID: 2, DropAmount: decimal.RequireFromString("50.25")},
		},
	}
	require.NoError(t, s.Record(ctx, b))
	assert.NotZero(t, b.ID)

	exists, err = s.Exists(ctx, "BATCH-1")
	require.NoError(t, err)
	assert.True(t, exists)

	err = s.Record(ctx, &domain.BankDropBatch{BatchNumber: "BATCH-1", TotalAmount: decimal.Zero, CreatedAt: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.Record(ctx, &domain.BankDropBatch{
		BatchNumber: "BATCH-2", DropCount: 0, TotalAmount: decimal.Zero, CreatedBy: 1, CreatedAt: "2025-03-03 10:00:00",
	}))

	batches, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "BATCH-2", batches[0].BatchNumber)
	assert.Empty(t, batches[0].Items)
	assert.Equal(t, "BATCH-1", batches[1].BatchNumber)
	assert.Equal(t, "150.25", batches[1].TotalAmount.StringFixed(2))
	require.Len(t, batches[1].Items, 2)
	assert.Equal(t, int64(2), batches[1].Items[1].DropID)
	assert.True(t, decimal.RequireFromString("50.25").Equal(batches[1].Items[1].DropAmount))
}
