package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Denominations holds physical bill and coin counts. Every monetary total
// derived from a physical count goes through Total.
type Denominations struct {
	Hundreds    int `db:"hundreds" json:"hundreds"`
	Fifties     int `db:"fifties" json:"fifties"`
	Twenties    int `db:"twenties" json:"twenties"`
	Tens        int `db:"tens" json:"tens"`
	Fives       int `db:"fives" json:"fives"`
	Twos        int `db:"twos" json:"twos"`
	Ones        int `db:"ones" json:"ones"`
	HalfDollars int `db:"half_dollars" json:"half_dollars"`
	Quarters    int `db:"quarters" json:"quarters"`
	Dimes       int `db:"dimes" json:"dimes"`
	Nickels     int `db:"nickels" json:"nickels"`
	Pennies     int `db:"pennies" json:"pennies"`
}

// Denomination is one named bill or coin and its face value.
type Denomination struct {
	Name  string
	Value decimal.Decimal
}

// DenominationTable lists the twelve denominations in Counts order.
var DenominationTable = []Denomination{
	{Name: "hundreds", Value: decimal.NewFromInt(100)},
	{Name: "fifties", Value: decimal.NewFromInt(50)},
	{Name: "twenties", Value: decimal.NewFromInt(20)},
	{Name: "tens", Value: decimal.NewFromInt(10)},
	{Name: "fives", Value: decimal.NewFromInt(5)},
	{Name: "twos", Value: decimal.NewFromInt(2)},
	{Name: "ones", Value: decimal.NewFromInt(1)},
	{Name: "half_dollars", Value: decimal.New(50, -2)},
	{Name: "quarters", Value: decimal.New(25, -2)},
	{Name: "dimes", Value: decimal.New(10, -2)},
	{Name: "nickels", Value: decimal.New(5, -2)},
	{Name: "pennies", Value: decimal.New(1, -2)},
}

// Counts returns the counts in DenominationTable order.
func (d Denominations) Counts() []int {
	return []int{
		d.Hundreds, d.Fifties, d.Twenties, d.Tens, d.Fives, d.Twos, d.Ones,
		d.HalfDollars, d.Quarters, d.Dimes, d.Nickels, d.Pennies,
	}
}

// Total returns the sum of count times face value, rounded to cents.
func (d Denominations) Total() decimal.Decimal {
	total := decimal.Zero
	for i, count := range d.Counts() {
		total = total.Add(DenominationTable[i].Value.Mul(decimal.NewFromInt(int64(count))))
	}
	return total.Round(2)
}

// Add returns the per-denomination sum of d and o.
func (d Denominations) Add(o Denominations) Denominations {
	return Denominations{
		Hundreds:    d.Hundreds + o.Hundreds,
		Fifties:     d.Fifties + o.Fifties,
		Twenties:    d.Twenties + o.Twenties,
		Tens:        d.Tens + o.Tens,
		Fives:       d.Fives + o.Fives,
		Twos:        d.Twos + o.Twos,
		Ones:        d.Ones + o.Ones,
		HalfDollars: d.HalfDollars + o.HalfDollars,
		Quarters:    d.Quarters + o.Quarters,
		Dimes:       d.Dimes + o.Dimes,
		Nickels:     d.Nickels + o.Nickels,
		Pennies:     d.Pennies + o.Pennies,
	}
}

// Validate rejects negative counts.
func (d Denominations) Validate() error {
	for i, count := range d.Counts() {
		if count < 0 {
			return Validationf("%s count must not be negative", DenominationTable[i].Name)
		}
	}
	return nil
}

// Set assigns the count for a denomination by its canonical name.
func (d *Denominations) Set(name string, count int) error {
	switch name {
	case "hundreds":
		d.Hundreds = count
	case "fifties":
		d.Fifties = count
	case "twenties":
		d.Twenties = count
	case "tens":
		d.Tens = count
	case "fives":
		d.Fives = count
	case "twos":
		d.Twos = count
	case "ones":
		d.Ones = count
	case "half_dollars":
		d.HalfDollars = count
	case "quarters":
		d.Quarters = count
	case "dimes":
		d.Dimes = count
	case "nickels":
		d.Nickels = count
	case "pennies":
		d.Pennies = count
	default:
		return fmt.Errorf("unknown denomination %q", name)
	}
	return nil
}
