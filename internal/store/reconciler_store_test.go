package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/domain"
)

func reconcilerFor(t *testing.T, s *ReconcilerStore, dropID int64) *domain.ReconcilerView {
	t.Helper()
	var id int64
	require.NoError(t, s.db.Get(&id, `SELECT id FROM cash_drop_reconcilers WHERE drop_entry_id = ?`, dropID))
	v, err := s.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func TestReconcilerStoreGetByIDJoinsDrop(t *testing.T) {
	d := openTestDB(t)
	u := seedUser(t, d, "clerk@example.com", false)
	drops := NewDropStore(d)
	s := NewReconcilerStore(d)
	ctx := context.Background()

	drop, err := drops.Create(ctx, newDrop(u.ID, "WS1", "2025-03-01", domain.StatusSubmitted,
		domain.Denominations{Hundreds: 1, Ones: 5}))
	require.NoError(t, err)

	v := reconcilerFor(t, s, drop.ID)
	assert.Equal(t, drop.ID, v.DropEntryID)
	assert.Equal(t, u.Name, v.UserName)
	assert.Equal(t, "105.00", v.SystemDropAmount.StringFixed(2))
	assert.Equal(t, 5, v.Ones)
	assert.False(t, v.IsReconciled)
	assert.False(t, v.AdminCountAmount.Valid)
	assert.Equal(t, domain.StatusSubmitted, v.DropStatus)
	assert.True(t, v.ReconciledAmount().Equal(v.SystemDropAmount))

	missing, err := s.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReconcilerStoreReconcile(t *testing.T) {
	d := openTestDB(t)
	u := seedUser(t, d, "clerk@example.com", false)
	drops := NewDropStore(d)
	s := NewReconcilerStore(d)
	ctx := context.Background()

	drop, err := drops.Create(ctx, newDrop(u.ID, "WS1", "2025-03-01", domain.StatusSubmitted,
		domain.Denominations{Hundreds: 1, Ones: 5}))
	require.NoError(t, err)
	v := reconcilerFor(t, s, drop.ID)

	rec := v.Reconciler
	rec.IsReconciled = true
	rec.AdminCountAmount = decimal.NewNullDecimal(decimal.NewFromInt(100))
	rec.ReconcileDelta = decimal.NewNullDecimal(decimal.NewFromInt(-5))
	note := "counted"
	rec.Notes = &note

	drop.Status = domain.StatusReconciled
	drop.Denominations = domain.Denominations{Hundreds: 1}
	drop.Recalculate()
	require.NoError(t, s.Reconcile(ctx, &rec, drop))

	v = reconcilerFor(t, s, drop.ID)
	assert.True(t, v.IsReconciled)
	assert.Equal(t, "-5.00", v.ReconcileDelta.Decimal.StringFixed(2))
	assert.Equal(t, "100.00", v.SystemDropAmount.StringFixed(2))
	assert.Equal(t, 0, v.Ones)
	assert.Equal(t, domain.StatusReconciled, v.DropStatus)
	require.NotNil(t, v.Notes)
	assert.Equal(t, "counted", *v.Notes)

	rec.ID = 999
	assert.ErrorIs(t, s.Reconcile(ctx, &rec, drop), ErrNotFound)
}

func TestReconcilerStoreList(t *testing.T) {
	d := openTestDB(t)
	alice := seedUser(t, d, "alice@example.com", false)
	bob := seedUser(t, d, "bob@example.com", false)
	drops := NewDropStore(d)
	s := NewReconcilerStore(d)
	ctx := context.Background()

	a, err := drops.Create(ctx, newDrop(alice.ID, "WS1", "2025-03-01", domain.StatusSubmitted, domain.Denominations{Ones: 1}))
	require.NoError(t, err)
	b, err := drops.Create(ctx, newDrop(bob.ID, "WS2", "2025-03-02", domain.StatusSubmitted, domain.Denominations{Ones: 2}))
	require.NoError(t, err)
	c, err := drops.Create(ctx, newDrop(bob.ID, "WS3", "2025-03-02", domain.StatusSubmitted, domain.Denominations{Ones: 3}))
	require.NoError(t, err)
	_, err = drops.Create(ctx, newDrop(bob.ID, "WS4", "2025-03-02", domain.StatusDrafted, domain.Denominations{Ones: 4}))
	require.NoError(t, err)
	require.NoError(t, drops.Ignore(ctx, c.ID, "void"))

	r := &domain.DateRange{From: "2025-03-01", To: "2025-03-31"}
	all, err := s.List(ctx, domain.ReconcilerFilter{Range: r})
	require.NoError(t, err)
	require.Len(t, all, 2, "drafts and ignored drops are excluded")
	assert.Equal(t, b.ID, all[0].DropEntryID)

	mine, err := s.List(ctx, domain.ReconcilerFilter{Range: r, UserID: &alice.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a.ID, mine[0].DropEntryID)

	_, err = d.Exec(`UPDATE cash_drop_reconcilers SET is_reconciled = 1 WHERE drop_entry_id = ?`, a.ID)
	require.NoError(t, err)
	_, err = d.Exec(`UPDATE cash_drops SET bank_drop_batch_number = 'BATCH-1' WHERE id = ?`, a.ID)
	require.NoError(t, err)

	reconciled, err := s.List(ctx, domain.ReconcilerFilter{Range: r, OnlyReconciled: true})
	require.NoError(t, err)
	require.Len(t, reconciled, 1)
	assert.Equal(t, a.ID, reconciled[0].DropEntryID)

	byBatch, err := s.List(ctx, domain.ReconcilerFilter{BatchNumbers: []string{"BATCH-1", "BATCH-X"}})
	require.NoError(t, err)
	require.Len(t, byBatch, 1)
	assert.Equal(t, "BATCH-1", *byBatch[0].BankDropBatchNumber)
}
