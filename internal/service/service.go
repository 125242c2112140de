package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/store"
)

var (
	// deltaTolerance is the largest reconcile delta accepted without a
	// replacement denomination breakdown.
	deltaTolerance = decimal.New(1, -2)
	// breakdownTolerance bounds the gap between a replacement breakdown's
	// total and the admin count.
	breakdownTolerance = decimal.New(2, -2)
)

// LabelUpload is an image attached to a drop create or update.
type LabelUpload struct {
	Data     []byte
	MimeType string
}

// validateRange checks a YYYY-MM-DD query window.
func validateRange(r domain.DateRange) error {
	if r.From == "" || r.To == "" {
		return domain.Validationf("Both datefrom and dateto are required")
	}
	if !bizclock.ValidDate(r.From) || !bizclock.ValidDate(r.To) {
		return domain.Validationf("datefrom and dateto must be YYYY-MM-DD dates")
	}
	if r.From > r.To {
		return domain.Validationf("datefrom must not be after dateto")
	}
	return nil
}

func validateShiftKey(k domain.ShiftKey) error {
	if k.Workstation == "" || k.ShiftNumber == "" || k.Date == "" {
		return domain.Validationf("Missing required fields: workstation, shift_number, and date are required")
	}
	if !bizclock.ValidDate(k.Date) {
		return domain.Validationf("date must be a YYYY-MM-DD date")
	}
	return nil
}

// applyCounts sets each named denomination in counts on d.
func applyCounts(d *domain.Denominations, counts map[string]int) error {
	for name, n := range counts {
		if err := d.Set(name, n); err != nil {
			return domain.Validationf("%v", err)
		}
	}
	return d.Validate()
}

// notFound translates store.ErrNotFound, returned when a row vanished
// between read and write, into a user-facing error.
func notFound(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.NotFoundf("%s not found", what)
	}
	return fmt.Errorf("failed to update %s: %w", what, err)
}
