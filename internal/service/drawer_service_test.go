package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/domain"
)

func drawerInput(ws, date string, status domain.Status) DrawerInput {
	return DrawerInput{
		Workstation:   ws,
		ShiftNumber:   "1",
		Date:          date,
		StartingCash:  decimal.NewFromInt(200),
		Denominations: domain.Denominations{Twenties: 9, Fives: 3, Quarters: 20},
		Status:        status,
	}
}

func TestDrawerServiceCreate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	in := drawerInput("WS1", env.today, "")
	drawer, err := env.drawers.Create(ctx, env.clerk, in)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, drawer.Status)
	assert.Equal(t, "200.00", drawer.TotalCash.StringFixed(2))
	assert.Equal(t, env.clerk.ID, drawer.UserID)
	assert.Equal(t, "Casey Clerk", drawer.UserName)
	assert.Equal(t, "2025-03-02 10:00:00", drawer.CreatedAt)
}

func TestDrawerServiceCreateDuplicate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS1", env.today, domain.StatusSubmitted))
	require.NoError(t, err)

	_, err = env.drawers.Create(ctx, env.other, drawerInput("WS1", env.today, domain.StatusSubmitted))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "already exists for this workstation, shift, and date")
}

func TestDrawerServiceCreateValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*DrawerInput)
	}{
		{name: "missing workstation", mutate: func(in *DrawerInput) { in.Workstation = "" }},
		{name: "bad date", mutate: func(in *DrawerInput) { in.Date = "03/02/2025" }},
		{name: "negative count", mutate: func(in *DrawerInput) { in.Denominations.Dimes = -2 }},
		{name: "negative starting cash", mutate: func(in *DrawerInput) { in.StartingCash = decimal.NewFromInt(-1) }},
		{name: "bad status", mutate: func(in *DrawerInput) { in.Status = domain.StatusReconciled }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := drawerInput("WS1", env.today, domain.StatusSubmitted)
			tt.mutate(&in)
			_, err := env.drawers.Create(ctx, env.clerk, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDrawerServiceGetAndList(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	mine, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS1", env.today, domain.StatusSubmitted))
	require.NoError(t, err)
	_, err = env.drawers.Create(ctx, env.other, drawerInput("WS2", env.today, domain.StatusSubmitted))
	require.NoError(t, err)

	_, err = env.drawers.Get(ctx, env.other, mine.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := env.drawers.Get(ctx, env.admin, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = env.drawers.Get(ctx, env.admin, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	r := domain.DateRange{From: env.yesterday, To: env.today}
	clerkList, err := env.drawers.List(ctx, env.clerk, r)
	require.NoError(t, err)
	assert.Len(t, clerkList, 1)

	adminList, err := env.drawers.List(ctx, env.admin, r)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)

	_, err = env.drawers.List(ctx, env.admin, domain.DateRange{From: env.today})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDrawerServiceUpdate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	draft, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS1", env.today, domain.StatusDrafted))
	require.NoError(t, err)

	submitted := domain.StatusSubmitted
	updated, err := env.drawers.Update(ctx, env.clerk, draft.ID, DrawerPatch{
		Counts: map[string]int{"hundreds": 1},
		Status: &submitted,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, updated.Status)
	assert.Equal(t, "300.00", updated.TotalCash.StringFixed(2))

	_, err = env.drawers.Update(ctx, env.clerk, draft.ID, DrawerPatch{Counts: map[string]int{"ones": 1}})
	assert.ErrorIs(t, err, domain.ErrValidation, "submitted drawers are not editable")

	other, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS2", env.today, domain.StatusDrafted))
	require.NoError(t, err)
	_, err = env.drawers.Update(ctx, env.clerk, other.ID, DrawerPatch{Counts: map[string]int{"doubloons": 1}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.drawers.Update(ctx, env.other, other.ID, DrawerPatch{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ws := "WS1"
	_, err = env.drawers.Update(ctx, env.clerk, other.ID, DrawerPatch{Workstation: &ws})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDrawerServiceDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	submitted, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS1", env.today, domain.StatusSubmitted))
	require.NoError(t, err)
	assert.ErrorIs(t, env.drawers.Delete(ctx, env.clerk, submitted.ID), domain.ErrValidation)

	draft, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS2", env.today, domain.StatusDrafted))
	require.NoError(t, err)
	assert.ErrorIs(t, env.drawers.Delete(ctx, env.other, draft.ID), domain.ErrForbidden)
	require.NoError(t, env.drawers.Delete(ctx, env.clerk, draft.ID))
	assert.ErrorIs(t, env.drawers.Delete(ctx, env.clerk, draft.ID), domain.ErrNotFound)

	adminDraft, err := env.drawers.Create(ctx, env.clerk, drawerInput("WS3", env.today, domain.StatusDrafted))
	require.NoError(t, err)
	assert.NoError(t, env.drawers.Delete(ctx, env.admin, adminDraft.ID))
}
