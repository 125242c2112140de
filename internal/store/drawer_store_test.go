package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/domain"
)

func newDrawer(userID int64, ws, date string, status domain.Status) *domain.CashDrawer {
	d := &domain.CashDrawer{
		UserID:        userID,
		Workstation:   ws,
		ShiftNumber:   "1",
		Date:          date,
		StartingCash:  decimal.NewFromInt(200),
		Denominations: domain.Denominations{Twenties: 10},
		Status:        status,
		CreatedAt:     date + " 08:00:00",
	}
	d.TotalCash = d.Denominations.Total()
	return d
}

func TestDrawerStoreCreateAndGet(t *testing.T) {
	d := openTestDB(t)
	u := seedUser(t, d, "clerk@example.com", false)
	s := NewDrawerStore(d)
	ctx := context.Background()

	created, err := s.Create(ctx, newDrawer(u.ID, "WS1", "2025-03-01", domain.StatusSubmitted))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, u.Name, created.UserName)
	assert.Equal(t, 10, created.Twenties)
	assert.Equal(t, "200.00", created.TotalCash.StringFixed(2))
	assert.Equal(t, "2025-03-01", created.Date)

	missing, err := s.GetByID(ctx, created.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDrawerStoreDuplicateShift(t *testing.T) {
	d := openTestDB(t)
	u := seedUser(t, d, "clerk@example.com", false)
	s := NewDrawerStore(d)
	ctx := context.Background()

	first, err := s.Create(ctx, newDrawer(u.ID, "WS1", "2025-03-01", domain.StatusSubmitted))
	require.NoError(t, err)

	_, err = s.Create(ctx, newDrawer(u.ID, "WS1", "2025-03-01", domain.StatusDrafted))
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.UpdateStatus(ctx, first.ID, domain.StatusIgnored))
	_, err = s.Create(ctx, newDrawer(u.ID, "WS1", "2025-03-01", domain.StatusDrafted))
	assert.NoError(t, err)
}

func TestDrawerStoreListByDateRange(t *testing.T) {
	d := openTestDB(t)
	alice := seedUser(t, d, "alice@example.com", false)
	bob := seedUser(t, d, "bob@example.com", false)
	s := NewDrawerStore(d)
	ctx := context.Background()

	for _, dr := range []*domain.CashDrawer{
		newDrawer(alice.ID, "WS1", "2025-03-01", domain.StatusSubmitted),
		newDrawer(alice.ID, "WS1", "2025-03-05", domain.StatusSubmitted),
		newDrawer(bob.ID, "WS2", "2025-03-02", domain.StatusSubmitted),
	} {
		_, err := s.Create(ctx, dr)
		require.NoError(t, err)
	}

	all, err := s.ListByDateRange(ctx, domain.DateRange{From: "2025-03-01", To: "2025-03-02"}, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-03-02", all[0].Date)

	mine, err := s.ListByDateRange(ctx, domain.DateRange{From: "2025-03-01", To: "2025-03-31"}, &alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, dr := range mine {
		assert.Equal(t, alice.ID, dr.UserID)
	}
}

func TestDrawerStoreUpdateAndDelete(t *testing.T) {
	d := openTestDB(t)
	u := seedUser(t, d, "clerk@example.com", false)
	s := NewDrawerStore(d)
	ctx := context.Background()

	created, err := s.Create(ctx, newDrawer(u.ID, "WS1", "2025-03-01", domain.StatusDrafted))
	require.NoError(t, err)

	created.Hundreds = 1
	created.TotalCash = created.Denominations.Total()
	created.Status = domain.StatusSubmitted
	require.NoError(t, s.Update(ctx, created))

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Hundreds)
	assert.Equal(t, "300.00", got.TotalCash.StringFixed(2))
	assert.Equal(t, domain.StatusSubmitted, got.Status)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.ErrorIs(t, s.Delete(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, s.UpdateStatus(ctx, created.ID, domain.StatusIgnored), ErrNotFound)
}
