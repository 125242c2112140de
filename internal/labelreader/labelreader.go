package labelreader

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"
)

// Prompt is the shared instruction sent with a label photo.
const Prompt = `This photo shows a cash register workstation label or end-of-shift receipt.
Reply with only the printed cash drop total as a plain number, for example 123.45.
Reply NONE if no total is visible.`

var ErrNoAmount = errors.New("no amount found on label")

// Reader extracts the printed total from a workstation label image.
type Reader interface {
	ReadTotal(ctx context.Context, r io.Reader, mimeType string) (decimal.Decimal, error)
}
