package domain

import "github.com/shopspring/decimal"

type Status string

const (
	StatusDrafted     Status = "drafted"
	StatusSubmitted   Status = "submitted"
	StatusReconciled  Status = "reconciled"
	StatusIgnored     Status = "ignored"
	StatusBankDropped Status = "bank_dropped"
)

type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
	CreatedAt    string `db:"created_at"`
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID      int64
	IsAdmin bool
}

// Owns reports whether the actor may act on a record owned by userID.
func (a Actor) Owns(userID int64) bool {
	return a.IsAdmin || a.ID == userID
}

// ScopeUserID returns nil for admins (no filter) and the actor's own id otherwise.
func (a Actor) ScopeUserID() *int64 {
	if a.IsAdmin {
		return nil
	}
	id := a.ID
	return &id
}

// DateRange is an inclusive YYYY-MM-DD range.
type DateRange struct {
	From string
	To   string
}

// ShiftKey identifies one register shift.
type ShiftKey struct {
	Workstation string
	ShiftNumber string
	Date        string
}

type CashDrawer struct {
	ID           int64           `db:"id"`
	UserID       int64           `db:"user_id"`
	UserName     string          `db:"user_name"`
	Workstation  string          `db:"workstation"`
	ShiftNumber  string          `db:"shift_number"`
	Date         string          `db:"date"`
	StartingCash decimal.Decimal `db:"starting_cash"`
	Denominations
	TotalCash decimal.Decimal `db:"total_cash"`
	Status    Status          `db:"status"`
	CreatedAt string          `db:"created_at"`
}

func (d *CashDrawer) Key() ShiftKey {
	return ShiftKey{Workstation: d.Workstation, ShiftNumber: d.ShiftNumber, Date: d.Date}
}

type CashDrop struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	UserName      string          `db:"user_name"`
	DrawerEntryID *int64          `db:"drawer_entry_id"`
	Workstation   string          `db:"workstation"`
	ShiftNumber   string          `db:"shift_number"`
	Date          string          `db:"date"`
	DropAmount    decimal.Decimal `db:"drop_amount"`
	Denominations
	WSLabelAmount       decimal.Decimal `db:"ws_label_amount"`
	Variance            decimal.Decimal `db:"variance"`
	LabelImage          *string         `db:"label_image"`
	Notes               *string         `db:"notes"`
	Status              Status          `db:"status"`
	Ignored             bool            `db:"ignored"`
	IgnoreReason        *string         `db:"ignore_reason"`
	BankDropped         bool            `db:"bank_dropped"`
	BankDropBatchNumber *string         `db:"bank_drop_batch_number"`
	SubmittedAt         *string         `db:"submitted_at"`
	CreatedAt           string          `db:"created_at"`
}

func (d *CashDrop) Key() ShiftKey {
	return ShiftKey{Workstation: d.Workstation, ShiftNumber: d.ShiftNumber, Date: d.Date}
}

// Recalculate derives DropAmount from the counts and Variance from the label amount.
func (d *CashDrop) Recalculate() {
	d.DropAmount = d.Denominations.Total()
	d.Variance = d.DropAmount.Sub(d.WSLabelAmount)
}

// Reconciler pairs a submitted drop with the admin's physical count.
type Reconciler struct {
	ID               int64               `db:"id"`
	UserID           int64               `db:"user_id"`
	DropEntryID      int64               `db:"drop_entry_id"`
	Workstation      string              `db:"workstation"`
	ShiftNumber      string              `db:"shift_number"`
	Date             string              `db:"date"`
	AdminCountAmount decimal.NullDecimal `db:"admin_count_amount"`
	IsReconciled     bool                `db:"is_reconciled"`
	ReconcileDelta   decimal.NullDecimal `db:"reconcile_delta"`
	Notes            *string             `db:"notes"`
	CreatedAt        string              `db:"created_at"`
}

// ReconcilerView is a reconciler joined with the fields of its drop.
type ReconcilerView struct {
	Reconciler
	UserName         string          `db:"user_name"`
	SystemDropAmount decimal.Decimal `db:"system_drop_amount"`
	Denominations
	WSLabelAmount       decimal.Decimal `db:"ws_label_amount"`
	Variance            decimal.Decimal `db:"variance"`
	LabelImage          *string         `db:"label_image"`
	DropNotes           *string         `db:"drop_notes"`
	DropStatus          Status          `db:"drop_status"`
	BankDropped         bool            `db:"bank_dropped"`
	BankDropBatchNumber *string         `db:"bank_drop_batch_number"`
	SubmittedAt         *string         `db:"submitted_at"`
}

// ReconciledAmount is the admin count when present, else the system drop amount.
func (v *ReconcilerView) ReconciledAmount() decimal.Decimal {
	if v.AdminCountAmount.Valid {
		return v.AdminCountAmount.Decimal
	}
	return v.SystemDropAmount
}

// ReconcilerFilter selects reconcilers for listing. Exactly one of Range or
// BatchNumbers is used.
type ReconcilerFilter struct {
	Range          *DateRange
	BatchNumbers   []string
	UserID         *int64
	OnlyReconciled bool
}

// BankDropBatch is the immutable record of one "mark as bank dropped" action.
type BankDropBatch struct {
	ID          int64               `db:"id"`
	BatchNumber string              `db:"batch_number"`
	DropCount   int                 `db:"drop_count"`
	TotalAmount decimal.Decimal     `db:"total_amount"`
	CreatedBy   int64               `db:"created_by"`
	CreatedAt   string              `db:"created_at"`
	Items       []BankDropBatchItem `db:"-"`
}

type BankDropBatchItem struct {
	DropID     int64           `db:"drop_id"`
	DropAmount decimal.Decimal `db:"drop_amount"`
}
