package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/domain"
)

type ReconcileInput struct {
	ID               int64
	IsReconciled     bool
	AdminCountAmount *decimal.Decimal
	// Denominations is the replacement breakdown, required when the count
	// differs from the drop amount by more than a cent.
	Denominations *domain.Denominations
	Notes         *string
}

type ReconcileService struct {
	reconcilers ReconcilerRepository
	drops       DropRepository
	logger      *slog.Logger
}

func NewReconcileService(reconcilers ReconcilerRepository, drops DropRepository, logger *slog.Logger) *ReconcileService {
	return &ReconcileService{reconcilers: reconcilers, drops: drops, logger: logger}
}

// List returns the reconcilers of live drops dated within r. Non-admins only
// see their own drops.
func (s *ReconcileService) List(ctx context.Context, actor domain.Actor, r domain.DateRange) ([]*domain.ReconcilerView, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}
	views, err := s.reconcilers.List(ctx, domain.ReconcilerFilter{Range: &r, UserID: actor.ScopeUserID()})
	if err != nil {
		return nil, fmt.Errorf("failed to list cash drop reconcilers: %w", err)
	}
	return views, nil
}

// Reconcile records the admin count for a drop, or clears it when
// in.IsReconciled is false.
//
// When the count is off by more than a cent the caller must supply a full
// replacement breakdown totalling the count within two cents. The drop's
// counts and amount are then overwritten with it, so later batch totals
// reflect what was physically counted.
func (s *ReconcileService) Reconcile(ctx context.Context, actor domain.Actor, in ReconcileInput) (*domain.ReconcilerView, error) {
	if !actor.IsAdmin {
		return nil, domain.Forbiddenf("Only admins can reconcile cash drops")
	}

	view, err := s.reconcilers.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop reconciler: %w", err)
	}
	if view == nil {
		return nil, domain.NotFoundf("Record not found")
	}
	drop, err := s.drops.GetByID(ctx, view.DropEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop: %w", err)
	}
	if drop == nil {
		return nil, domain.NotFoundf("Associated cash drop not found")
	}
	if drop.BankDropped {
		return nil, domain.Validationf("Cash drop has already been bank dropped")
	}
	if drop.Status != domain.StatusSubmitted && drop.Status != domain.StatusReconciled {
		return nil, domain.Validationf("Cash drop is %s and cannot be reconciled", drop.Status)
	}

	rec := view.Reconciler
	if in.IsReconciled {
		if err := s.applyCount(&rec, drop, in); err != nil {
			return nil, err
		}
	} else {
		rec.IsReconciled = false
		rec.AdminCountAmount = decimal.NullDecimal{}
		rec.ReconcileDelta = decimal.NullDecimal{}
		rec.Notes = nil
		drop.Status = domain.StatusSubmitted
	}

	if err := s.reconcilers.Reconcile(ctx, &rec, drop); err != nil {
		return nil, notFound(err, "cash drop reconciler")
	}

	if rec.IsReconciled {
		s.logger.Info("cash drop reconciled",
			"reconciler_id", rec.ID, "drop_id", drop.ID, "admin_id", actor.ID,
			"admin_count_amount", rec.AdminCountAmount.Decimal.StringFixed(2),
			"reconcile_delta", rec.ReconcileDelta.Decimal.StringFixed(2))
	} else {
		s.logger.Info("cash drop unreconciled", "reconciler_id", rec.ID, "drop_id", drop.ID, "admin_id", actor.ID)
	}

	updated, err := s.reconcilers.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop reconciler: %w", err)
	}
	if updated == nil {
		return nil, domain.NotFoundf("Record not found")
	}
	return updated, nil
}

func (s *ReconcileService) applyCount(rec *domain.Reconciler, drop *domain.CashDrop, in ReconcileInput) error {
	if in.AdminCountAmount == nil {
		return domain.Validationf("admin_count_amount is required when reconciling")
	}
	counted := in.AdminCountAmount.Round(2)
	if counted.IsNegative() {
		return domain.Validationf("admin_count_amount must not be negative")
	}

	delta := counted.Sub(drop.DropAmount)
	if delta.Abs().GreaterThan(deltaTolerance) {
		if in.Denominations == nil {
			return domain.Validationf(
				"Counted amount %s differs from the drop amount %s by %s; a denomination breakdown totalling the counted amount is required",
				counted.StringFixed(2), drop.DropAmount.StringFixed(2), delta.StringFixed(2))
		}
		if err := in.Denominations.Validate(); err != nil {
			return err
		}
		if sum := in.Denominations.Total(); sum.Sub(counted).Abs().GreaterThan(breakdownTolerance) {
			return domain.Validationf("Denomination breakdown totals %s but the counted amount is %s",
				sum.StringFixed(2), counted.StringFixed(2))
		}
		drop.Denominations = *in.Denominations
		drop.Recalculate()
	}

	rec.IsReconciled = true
	rec.AdminCountAmount = decimal.NewNullDecimal(counted)
	rec.ReconcileDelta = decimal.NewNullDecimal(delta)
	rec.Notes = in.Notes
	drop.Status = domain.StatusReconciled
	return nil
}
