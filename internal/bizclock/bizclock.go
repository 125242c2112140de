// Package bizclock renders dates and timestamps in the business timezone.
package bizclock

import (
	"fmt"
	"time"
	// Embedded zone database so BUSINESS_TZ resolves in minimal images.
	_ "time/tzdata"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock reading wall time in the named IANA timezone.
func New(tz string) (*Clock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Fixed returns a clock frozen at t, for tests.
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c *Clock) Location() *time.Location { return c.loc }

func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

func (c *Clock) Today() string { return c.Now().Format(DateLayout) }

func (c *Clock) Yesterday() string { return c.Now().AddDate(0, 0, -1).Format(DateLayout) }

// Timestamp returns the current time as YYYY-MM-DD HH:MM:SS.
func (c *Clock) Timestamp() string { return c.Now().Format(TimestampLayout) }

// AllowedSubmitDate reports whether date is today or yesterday.
func (c *Clock) AllowedSubmitDate(date string) bool {
	return date == c.Today() || date == c.Yesterday()
}

// BatchNumber returns the default bank-drop batch number, BATCH-YYYYMMDD-HHMMSS.
func (c *Clock) BatchNumber() string {
	return "BATCH-" + c.Now().Format("20060102-150405")
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
