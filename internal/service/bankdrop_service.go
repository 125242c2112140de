package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/domain"
)

// ItemError reports why one id of a mark request was skipped.
type ItemError struct {
	ID    string
	Error string
}

type MarkResult struct {
	BatchNumber string
	UpdatedIDs  []int64
	TotalAmount decimal.Decimal
	Errors      []ItemError
}

// Summary totals the denominations of a set of drops.
type Summary struct {
	Drops       []*domain.CashDrop
	Totals      domain.Denominations
	TotalAmount decimal.Decimal
	Count       int
}

type BankDropService struct {
	drops       DropRepository
	reconcilers ReconcilerRepository
	batches     BatchRepository
	clock       *bizclock.Clock
	logger      *slog.Logger
}

func NewBankDropService(
	drops DropRepository,
	reconcilers ReconcilerRepository,
	batches BatchRepository,
	clock *bizclock.Clock,
	logger *slog.Logger,
) *BankDropService {
	return &BankDropService{
		drops:       drops,
		reconcilers: reconcilers,
		batches:     batches,
		clock:       clock,
		logger:      logger,
	}
}

// BankDropData returns reconciled drops dated within r.
func (s *BankDropService) BankDropData(ctx context.Context, actor domain.Actor, r domain.DateRange) ([]*domain.ReconcilerView, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}
	return s.listReconciled(ctx, domain.ReconcilerFilter{Range: &r, UserID: actor.ScopeUserID(), OnlyReconciled: true})
}

// BankDropDataByBatches returns the reconciled drops stamped with any of
// the given batch numbers.
func (s *BankDropService) BankDropDataByBatches(ctx context.Context, actor domain.Actor, batches []string) ([]*domain.ReconcilerView, error) {
	batches = compact(batches)
	if len(batches) == 0 {
		return nil, domain.Validationf("batch_numbers array is required")
	}
	return s.listReconciled(ctx, domain.ReconcilerFilter{BatchNumbers: batches, UserID: actor.ScopeUserID(), OnlyReconciled: true})
}

func (s *BankDropService) listReconciled(ctx context.Context, f domain.ReconcilerFilter) ([]*domain.ReconcilerView, error) {
	views, err := s.reconcilers.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciled cash drops: %w", err)
	}
	return views, nil
}

// MarkBankDropped stamps each reconciled drop in rawIDs with one batch
// number. Bad ids are reported per item and never abort the rest. The batch
// record is written afterwards as a best-effort step: a failure there is
// logged while the drops stay marked.
func (s *BankDropService) MarkBankDropped(ctx context.Context, actor domain.Actor, rawIDs []string, customBatch string) (*MarkResult, error) {
	if !actor.IsAdmin {
		return nil, domain.Forbiddenf("Only admins can mark cash drops as bank dropped")
	}
	if len(rawIDs) == 0 {
		return nil, domain.Validationf("cash_drop_ids array is required")
	}

	batch, err := s.resolveBatchNumber(ctx, strings.TrimSpace(customBatch))
	if err != nil {
		return nil, err
	}

	result := &MarkResult{BatchNumber: batch, UpdatedIDs: []int64{}, TotalAmount: decimal.Zero}
	record := &domain.BankDropBatch{BatchNumber: batch, CreatedBy: actor.ID}

	for _, raw := range rawIDs {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			result.Errors = append(result.Errors, ItemError{ID: raw, Error: "Invalid cash drop id"})
			continue
		}
		amount, reason := s.markOne(ctx, id, batch)
		if reason != "" {
			result.Errors = append(result.Errors, ItemError{ID: raw, Error: reason})
			continue
		}
		result.UpdatedIDs = append(result.UpdatedIDs, id)
		result.TotalAmount = result.TotalAmount.Add(amount)
		record.Items = append(record.Items, domain.BankDropBatchItem{DropID: id, DropAmount: amount})
	}

	s.logger.Info("cash drops marked bank dropped",
		"batch_number", batch, "admin_id", actor.ID,
		"updated", len(result.UpdatedIDs), "errors", len(result.Errors),
		"total_amount", result.TotalAmount.StringFixed(2))

	if len(record.Items) > 0 {
		record.DropCount = len(record.Items)
		record.TotalAmount = result.TotalAmount
		record.CreatedAt = s.clock.Timestamp()
		if err := s.batches.Record(ctx, record); err != nil {
			s.logger.Error("failed to record bank drop batch",
				"batch_number", batch, "drop_ids", result.UpdatedIDs, "error", err)
		}
	}
	return result, nil
}

// markOne stamps a single drop. It returns the drop amount on success, or a
// reason for the per-item error list.
func (s *BankDropService) markOne(ctx context.Context, id int64, batch string) (decimal.Decimal, string) {
	drop, err := s.drops.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load cash drop for bank drop", "drop_id", id, "error", err)
		return decimal.Zero, "Internal error"
	}
	if drop == nil {
		return decimal.Zero, "Cash drop not found"
	}
	if drop.BankDropped {
		return decimal.Zero, "Cash drop already bank dropped"
	}
	if drop.Status != domain.StatusReconciled {
		return decimal.Zero, "Cash drop is not reconciled"
	}

	ok, err := s.drops.MarkBankDropped(ctx, id, batch)
	if err != nil {
		s.logger.Error("failed to mark cash drop bank dropped", "drop_id", id, "batch_number", batch, "error", err)
		return decimal.Zero, "Internal error"
	}
	if !ok {
		return decimal.Zero, "Cash drop changed while marking; reload and retry"
	}
	return drop.DropAmount, ""
}

// resolveBatchNumber returns custom when it is unused, or a generated
// timestamp number. A generated number that is already taken gets a random
// suffix.
func (s *BankDropService) resolveBatchNumber(ctx context.Context, custom string) (string, error) {
	if custom != "" {
		exists, err := s.batches.Exists(ctx, custom)
		if err != nil {
			return "", fmt.Errorf("failed to check batch number: %w", err)
		}
		if exists {
			return "", domain.Conflictf("Batch number %s already exists", custom)
		}
		return custom, nil
	}

	batch := s.clock.BatchNumber()
	exists, err := s.batches.Exists(ctx, batch)
	if err != nil {
		return "", fmt.Errorf("failed to check batch number: %w", err)
	}
	if exists {
		batch += "-" + uuid.NewString()[:8]
	}
	return batch, nil
}

// BatchHistory returns every recorded batch, newest first.
func (s *BankDropService) BatchHistory(ctx context.Context) ([]*domain.BankDropBatch, error) {
	batches, err := s.batches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank drop batches: %w", err)
	}
	return batches, nil
}

// Summary recomputes denomination totals over the selected drops, chosen by
// id or by batch number. Non-admins only count their own drops.
func (s *BankDropService) Summary(ctx context.Context, actor domain.Actor, rawIDs, batches []string) (*Summary, error) {
	var (
		drops []*domain.CashDrop
		err   error
	)
	switch batches = compact(batches); {
	case len(rawIDs) > 0:
		ids := make([]int64, 0, len(rawIDs))
		for _, raw := range rawIDs {
			if id, perr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); perr == nil && id > 0 {
				ids = append(ids, id)
			}
		}
		drops, err = s.drops.ListByIDs(ctx, ids)
	case len(batches) > 0:
		drops, err = s.drops.ListByBatchNumbers(ctx, batches)
	default:
		return nil, domain.Validationf("cash_drop_ids or batch_numbers array is required")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cash drops: %w", err)
	}

	summary := &Summary{Drops: make([]*domain.CashDrop, 0, len(drops))}
	for _, d := range drops {
		if !actor.Owns(d.UserID) {
			continue
		}
		summary.Drops = append(summary.Drops, d)
		summary.Totals = summary.Totals.Add(d.Denominations)
	}
	if len(summary.Drops) == 0 {
		return nil, domain.NotFoundf("No valid cash drops found")
	}
	summary.Count = len(summary.Drops)
	summary.TotalAmount = summary.Totals.Total()
	return summary, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
