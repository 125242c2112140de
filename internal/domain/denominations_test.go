package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenominationsTotal(t *testing.T) {
	tests := []struct {
		name  string
		d     Denominations
		total string
	}{
		{name: "empty", d: Denominations{}, total: "0"},
		{name: "bills", d: Denominations{Hundreds: 1, Ones: 5}, total: "105"},
		{name: "every denomination once", d: Denominations{
			Hundreds: 1, Fifties: 1, Twenties: 1, Tens: 1, Fives: 1, Twos: 1, Ones: 1,
			HalfDollars: 1, Quarters: 1, Dimes: 1, Nickels: 1, Pennies: 1,
		}, total: "188.91"},
		{name: "coins only", d: Denominations{Quarters: 3, Dimes: 2, Nickels: 1, Pennies: 4}, total: "1.04"},
		{name: "many pennies", d: Denominations{Pennies: 1234}, total: "12.34"},
		{name: "half dollars", d: Denominations{HalfDollars: 3}, total: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.total)
			assert.True(t, want.Equal(tt.d.Total()), "got %s want %s", tt.d.Total(), want)
		})
	}
}

func TestDenominationsTotalMatchesWeightedSum(t *testing.T) {
	// Totals are exact: no float drift across large mixed counts.
	d := Denominations{Twenties: 37, Dimes: 333, Nickels: 77, Pennies: 9999}
	expected := decimal.NewFromInt(740).
		Add(decimal.RequireFromString("33.30")).
		Add(decimal.RequireFromString("3.85")).
		Add(decimal.RequireFromString("99.99"))
	assert.True(t, expected.Equal(d.Total()))
	assert.Equal(t, "877.14", d.Total().StringFixed(2))
}

func TestDenominationsAdd(t *testing.T) {
	a := Denominations{Hundreds: 1, Ones: 5}
	b := Denominations{Hundreds: 2, Pennies: 3}

	sum := a.Add(b)
	assert.Equal(t, 3, sum.Hundreds)
	assert.Equal(t, 5, sum.Ones)
	assert.Equal(t, 3, sum.Pennies)
	assert.True(t, a.Total().Add(b.Total()).Equal(sum.Total()))
}

func TestDenominationsValidate(t *testing.T) {
	require.NoError(t, Denominations{Hundreds: 2}.Validate())

	err := Denominations{Quarters: -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "quarters")
}

func TestDenominationsSet(t *testing.T) {
	var d Denominations
	for i, denom := range DenominationTable {
		require.NoError(t, d.Set(denom.Name, i+1))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, d.Counts())

	assert.Error(t, d.Set("doubloons", 1))
}

func TestCashDropRecalculate(t *testing.T) {
	drop := &CashDrop{
		Denominations: Denominations{Hundreds: 1, Ones: 5},
		WSLabelAmount: decimal.NewFromInt(110),
	}
	drop.Recalculate()

	assert.Equal(t, "105.00", drop.DropAmount.StringFixed(2))
	assert.Equal(t, "-5.00", drop.Variance.StringFixed(2))
}

func TestActorOwns(t *testing.T) {
	assert.True(t, Actor{ID: 1}.Owns(1))
	assert.False(t, Actor{ID: 1}.Owns(2))
	assert.True(t, Actor{ID: 1, IsAdmin: true}.Owns(2))

	assert.Nil(t, Actor{ID: 1, IsAdmin: true}.ScopeUserID())
	scoped := Actor{ID: 7}.ScopeUserID()
	require.NotNil(t, scoped)
	assert.Equal(t, int64(7), *scoped)
}
