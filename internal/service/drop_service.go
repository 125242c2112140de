package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/labelreader"
	"github.com/vbonduro/cashdrop/internal/labelstore"
	"github.com/vbonduro/cashdrop/internal/store"
)

const dropConflictMessage = "Cash drop entry already exists for this workstation, shift, and date"

type DropInput struct {
	Workstation   string
	ShiftNumber   string
	Date          string
	DrawerEntryID *int64
	Denominations domain.Denominations
	// WSLabelAmount is the register-printed total. When nil and a label
	// image is attached, the label reader may fill it in.
	WSLabelAmount *decimal.Decimal
	Notes         *string
	Status        domain.Status
	Label         *LabelUpload
}

// DropPatch carries the fields of a partial drop update. Nil fields are left
// unchanged.
type DropPatch struct {
	Workstation   *string
	ShiftNumber   *string
	Date          *string
	DrawerEntryID *int64
	Counts        map[string]int
	WSLabelAmount *decimal.Decimal
	Notes         *string
	Status        *domain.Status
	Label         *LabelUpload
}

type DropService struct {
	drops   DropRepository
	drawers DrawerRepository
	labels  labelstore.LabelStore
	reader  labelreader.Reader
	clock   *bizclock.Clock
	logger  *slog.Logger
}

// NewDropService builds the drop use cases. reader may be nil when no label
// reader is configured.
func NewDropService(
	drops DropRepository,
	drawers DrawerRepository,
	labels labelstore.LabelStore,
	reader labelreader.Reader,
	clock *bizclock.Clock,
	logger *slog.Logger,
) *DropService {
	return &DropService{
		drops:   drops,
		drawers: drawers,
		labels:  labels,
		reader:  reader,
		clock:   clock,
		logger:  logger,
	}
}

// Create records a drafted or submitted drop. A submitted drop must be dated
// today or yesterday in business time and gets its reconciler atomically.
func (s *DropService) Create(ctx context.Context, actor domain.Actor, in DropInput) (*domain.CashDrop, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusSubmitted
	}
	if status != domain.StatusDrafted && status != domain.StatusSubmitted {
		return nil, domain.Validationf("status must be drafted or submitted")
	}

	key := domain.ShiftKey{Workstation: in.Workstation, ShiftNumber: in.ShiftNumber, Date: in.Date}
	if err := validateShiftKey(key); err != nil {
		return nil, err
	}
	if err := in.Denominations.Validate(); err != nil {
		return nil, err
	}
	if status == domain.StatusSubmitted {
		if err := s.checkSubmitDate(key.Date); err != nil {
			return nil, err
		}
	}
	if err := s.checkConflict(ctx, actor, key, 0); err != nil {
		return nil, err
	}
	if in.DrawerEntryID != nil {
		if err := s.checkDrawer(ctx, actor, *in.DrawerEntryID, key, 0); err != nil {
			return nil, err
		}
	}

	now := s.clock.Timestamp()
	drop := &domain.CashDrop{
		UserID:        actor.ID,
		DrawerEntryID: in.DrawerEntryID,
		Workstation:   key.Workstation,
		ShiftNumber:   key.ShiftNumber,
		Date:          key.Date,
		Denominations: in.Denominations,
		Notes:         in.Notes,
		Status:        status,
		CreatedAt:     now,
	}
	if status == domain.StatusSubmitted {
		drop.SubmittedAt = &now
	}
	if in.WSLabelAmount != nil {
		drop.WSLabelAmount = *in.WSLabelAmount
	}

	if in.Label != nil {
		labelKey, err := s.labels.Save(ctx, "drop", in.Label.MimeType, bytes.NewReader(in.Label.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to save label image: %w", err)
		}
		drop.LabelImage = &labelKey
		if in.WSLabelAmount == nil {
			drop.WSLabelAmount = s.readLabel(ctx, in.Label)
		}
	}
	drop.Recalculate()

	created, err := s.drops.Create(ctx, drop)
	if err != nil {
		s.discardLabel(ctx, drop.LabelImage)
		if errors.Is(err, store.ErrDuplicate) {
			return nil, s.writeConflict(ctx, actor, key, drop.DrawerEntryID, 0)
		}
		return nil, fmt.Errorf("failed to create cash drop: %w", err)
	}

	s.logger.Info("cash drop created",
		"drop_id", created.ID, "user_id", actor.ID, "status", created.Status,
		"drop_amount", created.DropAmount.StringFixed(2))
	return created, nil
}

// Validate runs the create-time conflict check without writing. selfID names
// the caller's own draft, which never conflicts with itself.
func (s *DropService) Validate(ctx context.Context, actor domain.Actor, key domain.ShiftKey, selfID *int64) error {
	if err := validateShiftKey(key); err != nil {
		return err
	}
	var id int64
	if selfID != nil {
		id = *selfID
	}
	return s.checkConflict(ctx, actor, key, id)
}

func (s *DropService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.CashDrop, error) {
	drop, err := s.drops.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop: %w", err)
	}
	if drop == nil {
		return nil, domain.NotFoundf("Cash drop not found")
	}
	if !actor.Owns(drop.UserID) {
		return nil, domain.Forbiddenf("You can only access your own cash drops")
	}
	return drop, nil
}

// List returns drops dated within r. Non-admins only see their own.
func (s *DropService) List(ctx context.Context, actor domain.Actor, r domain.DateRange) ([]*domain.CashDrop, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}
	drops, err := s.drops.ListByDateRange(ctx, r, actor.ScopeUserID())
	if err != nil {
		return nil, fmt.Errorf("failed to list cash drops: %w", err)
	}
	return drops, nil
}

// Update applies p to a drafted or submitted drop. The date window and the
// conflict check run again whenever the drop becomes submitted.
func (s *DropService) Update(ctx context.Context, actor domain.Actor, id int64, p DropPatch) (*domain.CashDrop, error) {
	drop, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if drop.Status != domain.StatusDrafted && drop.Status != domain.StatusSubmitted {
		return nil, domain.Validationf("Cash drop is %s and can no longer be edited", drop.Status)
	}
	wasSubmitted := drop.Status == domain.StatusSubmitted
	origKey := drop.Key()

	if p.Workstation != nil {
		drop.Workstation = *p.Workstation
	}
	if p.ShiftNumber != nil {
		drop.ShiftNumber = *p.ShiftNumber
	}
	if p.Date != nil {
		drop.Date = *p.Date
	}
	if p.Notes != nil {
		drop.Notes = p.Notes
	}
	if p.WSLabelAmount != nil {
		drop.WSLabelAmount = *p.WSLabelAmount
	}
	if p.Status != nil {
		switch {
		case *p.Status == domain.StatusDrafted && wasSubmitted:
			return nil, domain.Validationf("A submitted cash drop cannot be moved back to drafted")
		case *p.Status != domain.StatusDrafted && *p.Status != domain.StatusSubmitted:
			return nil, domain.Validationf("status must be drafted or submitted")
		}
		drop.Status = *p.Status
	}
	if err := applyCounts(&drop.Denominations, p.Counts); err != nil {
		return nil, err
	}
	key := drop.Key()
	if err := validateShiftKey(key); err != nil {
		return nil, err
	}

	submitting := drop.Status == domain.StatusSubmitted && !wasSubmitted
	if submitting || (wasSubmitted && key.Date != origKey.Date) {
		if err := s.checkSubmitDate(key.Date); err != nil {
			return nil, err
		}
	}
	if submitting || key != origKey {
		if err := s.checkConflict(ctx, actor, key, drop.ID); err != nil {
			return nil, err
		}
	}
	// A linked drawer must keep matching the drop's shift key.
	drawerID := drop.DrawerEntryID
	if p.DrawerEntryID != nil {
		drawerID = p.DrawerEntryID
	}
	if drawerID != nil && (p.DrawerEntryID != nil || key != origKey) {
		if err := s.checkDrawer(ctx, actor, *drawerID, key, drop.ID); err != nil {
			return nil, err
		}
	}
	drop.DrawerEntryID = drawerID
	if submitting {
		now := s.clock.Timestamp()
		drop.SubmittedAt = &now
	}

	oldLabel := drop.LabelImage
	if p.Label != nil {
		labelKey, err := s.labels.Save(ctx, fmt.Sprintf("drop_%d", drop.ID), p.Label.MimeType, bytes.NewReader(p.Label.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to save label image: %w", err)
		}
		drop.LabelImage = &labelKey
		if p.WSLabelAmount == nil && s.reader != nil {
			drop.WSLabelAmount = s.readLabel(ctx, p.Label)
		}
	}
	drop.Recalculate()

	if err := s.drops.Update(ctx, drop); err != nil {
		if p.Label != nil {
			s.discardLabel(ctx, drop.LabelImage)
		}
		if errors.Is(err, store.ErrDuplicate) {
			return nil, s.writeConflict(ctx, actor, key, drop.DrawerEntryID, drop.ID)
		}
		return nil, notFound(err, "cash drop")
	}
	// The replaced image goes only once the new one is referenced.
	if p.Label != nil {
		s.discardLabel(ctx, oldLabel)
	}

	s.logger.Info("cash drop updated", "drop_id", drop.ID, "user_id", actor.ID, "status", drop.Status)
	return s.Get(ctx, actor, id)
}

// UpdateDenominations replaces the counts of a drop and re-derives its
// amounts. Admin only; bank dropped drops are final.
func (s *DropService) UpdateDenominations(ctx context.Context, actor domain.Actor, id int64, counts map[string]int) (*domain.CashDrop, error) {
	if !actor.IsAdmin {
		return nil, domain.Forbiddenf("Only admins can adjust cash drop denominations")
	}
	drop, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if drop.BankDropped {
		return nil, domain.Validationf("Cash drop has already been bank dropped")
	}
	if err := applyCounts(&drop.Denominations, counts); err != nil {
		return nil, err
	}
	drop.Recalculate()
	if err := s.drops.UpdateDenominations(ctx, drop); err != nil {
		return nil, notFound(err, "cash drop")
	}
	s.logger.Info("cash drop denominations adjusted", "drop_id", id, "user_id", actor.ID,
		"drop_amount", drop.DropAmount.StringFixed(2))
	return drop, nil
}

// Delete removes a drafted drop, its label image and a still-drafted
// linked drawer.
func (s *DropService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	drop, err := s.drops.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get cash drop: %w", err)
	}
	if drop == nil {
		return domain.NotFoundf("Cash drop not found")
	}
	if !actor.Owns(drop.UserID) {
		return domain.Forbiddenf("You can only delete your own cash drops")
	}
	if drop.Status != domain.StatusDrafted {
		return domain.Validationf("Only drafted cash drops can be deleted")
	}

	if err := s.drops.Delete(ctx, id); err != nil {
		return notFound(err, "cash drop")
	}
	s.discardLabel(ctx, drop.LabelImage)

	if drop.DrawerEntryID != nil {
		s.deleteDraftDrawer(ctx, *drop.DrawerEntryID)
	}
	s.logger.Info("cash drop deleted", "drop_id", id, "user_id", actor.ID)
	return nil
}

// Ignore soft-excludes a drafted or submitted drop, freeing its shift slot.
// A linked drawer is marked ignored as a best-effort follow-up.
func (s *DropService) Ignore(ctx context.Context, actor domain.Actor, id int64, reason string) (*domain.CashDrop, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Validationf("ignore_reason is required")
	}

	drop, err := s.drops.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drop: %w", err)
	}
	if drop == nil {
		return nil, domain.NotFoundf("Cash drop not found")
	}
	if !actor.Owns(drop.UserID) {
		return nil, domain.Forbiddenf("You can only ignore your own cash drops")
	}
	if drop.Status != domain.StatusDrafted && drop.Status != domain.StatusSubmitted {
		return nil, domain.Validationf("Cash drop is %s and cannot be ignored", drop.Status)
	}

	if err := s.drops.Ignore(ctx, id, reason); err != nil {
		return nil, notFound(err, "cash drop")
	}
	s.logger.Info("cash drop ignored", "drop_id", id, "user_id", actor.ID, "reason", reason)

	if drop.DrawerEntryID != nil {
		if err := s.drawers.UpdateStatus(ctx, *drop.DrawerEntryID, domain.StatusIgnored); err != nil {
			s.logger.Error("failed to ignore linked cash drawer",
				"drop_id", id, "drawer_id", *drop.DrawerEntryID, "error", err)
		}
	}
	return s.Get(ctx, actor, id)
}

func (s *DropService) checkSubmitDate(date string) error {
	if s.clock.AllowedSubmitDate(date) {
		return nil
	}
	return domain.Validationf("Cash drops can only be submitted for today (%s) or yesterday (%s) in %s time",
		s.clock.Today(), s.clock.Yesterday(), s.clock.Location())
}

// checkConflict fails when another active drop holds key. selfID is exempt
// when the actor may act on it.
func (s *DropService) checkConflict(ctx context.Context, actor domain.Actor, key domain.ShiftKey, selfID int64) error {
	existing, err := s.drops.FindActive(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check for existing cash drop: %w", err)
	}
	if existing == nil {
		return nil
	}
	if selfID != 0 && existing.ID == selfID && actor.Owns(existing.UserID) {
		return nil
	}
	return conflictWith(actor, existing)
}

// writeConflict builds the conflict error after the store rejected a write
// that passed checkConflict and checkDrawer.
func (s *DropService) writeConflict(ctx context.Context, actor domain.Actor, key domain.ShiftKey, drawerID *int64, selfID int64) error {
	if drawerID != nil {
		linked, err := s.drops.FindByDrawer(ctx, *drawerID)
		if err == nil && linked != nil && linked.ID != selfID {
			return drawerLinkedConflict(*drawerID)
		}
	}
	existing, err := s.drops.FindActive(ctx, key)
	if err != nil || existing == nil {
		return domain.Conflictf(dropConflictMessage)
	}
	return conflictWith(actor, existing)
}

func conflictWith(actor domain.Actor, existing *domain.CashDrop) error {
	if existing.UserID != actor.ID && existing.UserName != "" {
		return domain.Conflictf("%s (submitted by %s)", dropConflictMessage, existing.UserName)
	}
	return domain.Conflictf(dropConflictMessage)
}

// checkDrawer verifies a drawer may be linked to the drop selfID holding key:
// it must exist, belong to the actor, count the same shift and not be linked
// to any other drop.
func (s *DropService) checkDrawer(ctx context.Context, actor domain.Actor, drawerID int64, key domain.ShiftKey, selfID int64) error {
	drawer, err := s.drawers.GetByID(ctx, drawerID)
	if err != nil {
		return fmt.Errorf("failed to get cash drawer: %w", err)
	}
	if drawer == nil {
		return domain.Validationf("Cash drawer %d not found", drawerID)
	}
	if !actor.Owns(drawer.UserID) {
		return domain.Forbiddenf("You can only link your own cash drawers")
	}
	if drawer.Key() != key {
		return domain.Validationf("Cash drawer %d is for workstation %s shift %s on %s, not this cash drop's shift",
			drawerID, drawer.Workstation, drawer.ShiftNumber, drawer.Date)
	}

	linked, err := s.drops.FindByDrawer(ctx, drawerID)
	if err != nil {
		return fmt.Errorf("failed to check cash drawer link: %w", err)
	}
	if linked != nil && linked.ID != selfID {
		return drawerLinkedConflict(drawerID)
	}
	return nil
}

func drawerLinkedConflict(drawerID int64) error {
	return domain.Conflictf("Cash drawer %d is already linked to another cash drop", drawerID)
}

func (s *DropService) deleteDraftDrawer(ctx context.Context, drawerID int64) {
	drawer, err := s.drawers.GetByID(ctx, drawerID)
	if err != nil {
		s.logger.Error("failed to load linked cash drawer", "drawer_id", drawerID, "error", err)
		return
	}
	if drawer == nil || drawer.Status != domain.StatusDrafted {
		return
	}
	if err := s.drawers.Delete(ctx, drawerID); err != nil {
		s.logger.Error("failed to delete linked draft cash drawer", "drawer_id", drawerID, "error", err)
	}
}

// readLabel asks the label reader for the printed total. Any failure yields
// zero.
func (s *DropService) readLabel(ctx context.Context, l *LabelUpload) decimal.Decimal {
	if s.reader == nil {
		return decimal.Zero
	}
	amount, err := s.reader.ReadTotal(ctx, bytes.NewReader(l.Data), l.MimeType)
	if err != nil {
		s.logger.Warn("failed to read label total", "error", err)
		return decimal.Zero
	}
	return amount
}

func (s *DropService) discardLabel(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.labels.Delete(ctx, *key); err != nil && !errors.Is(err, labelstore.ErrNotFound) {
		s.logger.Error("failed to delete label image", "storage_key", *key, "error", err)
	}
}
