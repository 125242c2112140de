package web

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/service"
)

// money renders as a JSON number with exactly two decimals.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func nullMoney(d decimal.NullDecimal) *money {
	if !d.Valid {
		return nil
	}
	m := money(d.Decimal)
	return &m
}

type drawerJSON struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	Workstation  string `json:"workstation"`
	ShiftNumber  string `json:"shift_number"`
	Date         string `json:"date"`
	StartingCash money  `json:"starting_cash"`
	domain.Denominations
	TotalCash money         `json:"total_cash"`
	Status    domain.Status `json:"status"`
	CreatedAt string        `json:"created_at"`
}

func toDrawerJSON(d *domain.CashDrawer) drawerJSON {
	return drawerJSON{
		ID:            d.ID,
		UserID:        d.UserID,
		UserName:      d.UserName,
		Workstation:   d.Workstation,
		ShiftNumber:   d.ShiftNumber,
		Date:          d.Date,
		StartingCash:  money(d.StartingCash),
		Denominations: d.Denominations,
		TotalCash:     money(d.TotalCash),
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

type dropJSON struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	DrawerEntryID *int64 `json:"drawer_entry_id"`
	Workstation   string `json:"workstation"`
	ShiftNumber   string `json:"shift_number"`
	Date          string `json:"date"`
	DropAmount    money  `json:"drop_amount"`
	domain.Denominations
	WSLabelAmount       money         `json:"ws_label_amount"`
	Variance            money         `json:"variance"`
	LabelImage          *string       `json:"label_image"`
	LabelImageURL       *string       `json:"label_image_url,omitempty"`
	Notes               *string       `json:"notes"`
	Status              domain.Status `json:"status"`
	Ignored             bool          `json:"ignored"`
	IgnoreReason        *string       `json:"ignore_reason"`
	BankDropped         bool          `json:"bank_dropped"`
	BankDropBatchNumber *string       `json:"bank_drop_batch_number"`
	SubmittedAt         *string       `json:"submitted_at"`
	CreatedAt           string        `json:"created_at"`
}

func toDropJSON(r *http.Request, d *domain.CashDrop) dropJSON {
	path, url := labelLinks(r, d.LabelImage)
	return dropJSON{
		ID:                  d.ID,
		UserID:              d.UserID,
		UserName:            d.UserName,
		DrawerEntryID:       d.DrawerEntryID,
		Workstation:         d.Workstation,
		ShiftNumber:         d.ShiftNumber,
		Date:                d.Date,
		DropAmount:          money(d.DropAmount),
		Denominations:       d.Denominations,
		WSLabelAmount:       money(d.WSLabelAmount),
		Variance:            money(d.Variance),
		LabelImage:          path,
		LabelImageURL:       url,
		Notes:               d.Notes,
		Status:              d.Status,
		Ignored:             d.Ignored,
		IgnoreReason:        d.IgnoreReason,
		BankDropped:         d.BankDropped,
		BankDropBatchNumber: d.BankDropBatchNumber,
		SubmittedAt:         d.SubmittedAt,
		CreatedAt:           d.CreatedAt,
	}
}

func toDropsJSON(r *http.Request, drops []*domain.CashDrop) []dropJSON {
	out := make([]dropJSON, 0, len(drops))
	for _, d := range drops {
		out = append(out, toDropJSON(r, d))
	}
	return out
}

type reconcilerJSON struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	UserName         string  `json:"user_name"`
	DropEntryID      int64   `json:"drop_entry_id"`
	Workstation      string  `json:"workstation"`
	ShiftNumber      string  `json:"shift_number"`
	Date             string  `json:"date"`
	AdminCountAmount *money  `json:"admin_count_amount"`
	IsReconciled     bool    `json:"is_reconciled"`
	ReconcileDelta   *money  `json:"reconcile_delta"`
	Notes            *string `json:"notes"`
	CreatedAt        string  `json:"created_at"`
	SystemDropAmount money   `json:"system_drop_amount"`
	ReconciledAmount money   `json:"reconciled_amount"`
	domain.Denominations
	WSLabelAmount       money         `json:"ws_label_amount"`
	Variance            money         `json:"variance"`
	LabelImage          *string       `json:"label_image"`
	LabelImageURL       *string       `json:"label_image_url,omitempty"`
	DropNotes           *string       `json:"drop_notes"`
	DropStatus          domain.Status `json:"drop_status"`
	BankDropped         bool          `json:"bank_dropped"`
	BankDropBatchNumber *string       `json:"bank_drop_batch_number"`
	SubmittedAt         *string       `json:"submitted_at"`
}

func toReconcilerJSON(r *http.Request, v *domain.ReconcilerView) reconcilerJSON {
	path, url := labelLinks(r, v.LabelImage)
	return reconcilerJSON{
		ID:                  v.ID,
		UserID:              v.UserID,
		UserName:            v.UserName,
		DropEntryID:         v.DropEntryID,
		Workstation:         v.Workstation,
		ShiftNumber:         v.ShiftNumber,
		Date:                v.Date,
		AdminCountAmount:    nullMoney(v.AdminCountAmount),
		IsReconciled:        v.IsReconciled,
		ReconcileDelta:      nullMoney(v.ReconcileDelta),
		Notes:               v.Notes,
		CreatedAt:           v.CreatedAt,
		SystemDropAmount:    money(v.SystemDropAmount),
		ReconciledAmount:    money(v.ReconciledAmount()),
		Denominations:       v.Denominations,
		WSLabelAmount:       money(v.WSLabelAmount),
		Variance:            money(v.Variance),
		LabelImage:          path,
		LabelImageURL:       url,
		DropNotes:           v.DropNotes,
		DropStatus:          v.DropStatus,
		BankDropped:         v.BankDropped,
		BankDropBatchNumber: v.BankDropBatchNumber,
		SubmittedAt:         v.SubmittedAt,
	}
}

func toReconcilersJSON(r *http.Request, views []*domain.ReconcilerView) []reconcilerJSON {
	out := make([]reconcilerJSON, 0, len(views))
	for _, v := range views {
		out = append(out, toReconcilerJSON(r, v))
	}
	return out
}

type batchItemJSON struct {
	DropID     int64 `json:"drop_id"`
	DropAmount money `json:"drop_amount"`
}

type batchJSON struct {
	ID          int64           `json:"id"`
	BatchNumber string          `json:"batch_number"`
	DropCount   int             `json:"drop_count"`
	TotalAmount money           `json:"total_amount"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   string          `json:"created_at"`
	Items       []batchItemJSON `json:"items"`
}

func toBatchesJSON(batches []*domain.BankDropBatch) []batchJSON {
	out := make([]batchJSON, 0, len(batches))
	for _, b := range batches {
		items := make([]batchItemJSON, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, batchItemJSON{DropID: it.DropID, DropAmount: money(it.DropAmount)})
		}
		out = append(out, batchJSON{
			ID:          b.ID,
			BatchNumber: b.BatchNumber,
			DropCount:   b.DropCount,
			TotalAmount: money(b.TotalAmount),
			CreatedBy:   b.CreatedBy,
			CreatedAt:   b.CreatedAt,
			Items:       items,
		})
	}
	return out
}

type itemErrorJSON struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type markJSON struct {
	Success      bool            `json:"success"`
	BatchNumber  string          `json:"batch_number"`
	UpdatedCount int             `json:"updated_count"`
	UpdatedIDs   []int64         `json:"updated_ids"`
	TotalAmount  money           `json:"total_amount"`
	Errors       []itemErrorJSON `json:"errors,omitempty"`
}

func toMarkJSON(m *service.MarkResult) markJSON {
	out := markJSON{
		Success:      true,
		BatchNumber:  m.BatchNumber,
		UpdatedCount: len(m.UpdatedIDs),
		UpdatedIDs:   m.UpdatedIDs,
		TotalAmount:  money(m.TotalAmount),
	}
	for _, e := range m.Errors {
		out.Errors = append(out.Errors, itemErrorJSON{ID: e.ID, Error: e.Error})
	}
	return out
}

type summaryJSON struct {
	CashDrops   []dropJSON           `json:"cash_drops"`
	Totals      domain.Denominations `json:"totals"`
	TotalAmount money                `json:"total_amount"`
	Count       int                  `json:"count"`
}

func toSummaryJSON(r *http.Request, s *service.Summary) summaryJSON {
	return summaryJSON{
		CashDrops:   toDropsJSON(r, s.Drops),
		Totals:      s.Totals,
		TotalAmount: money(s.TotalAmount),
		Count:       s.Count,
	}
}

// labelLinks turns a storage key into the relative media path and the
// absolute URL clients load it from.
func labelLinks(r *http.Request, key *string) (*string, *string) {
	if key == nil || *key == "" {
		return nil, nil
	}
	path := "/media/" + *key
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	url := scheme + "://" + r.Host + path
	return &path, &url
}
