package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/store"
)

const drawerConflictMessage = "Cash drawer entry already exists for this workstation, shift, and date"

type DrawerInput struct {
	Workstation   string
	ShiftNumber   string
	Date          string
	StartingCash  decimal.Decimal
	Denominations domain.Denominations
	Status        domain.Status
}

// DrawerPatch carries the fields of a partial drawer update. Nil fields are
// left unchanged.
type DrawerPatch struct {
	Workstation  *string
	ShiftNumber  *string
	Date         *string
	StartingCash *decimal.Decimal
	Counts       map[string]int
	Status       *domain.Status
}

type DrawerService struct {
	drawers DrawerRepository
	clock   *bizclock.Clock
	logger  *slog.Logger
}

func NewDrawerService(drawers DrawerRepository, clock *bizclock.Clock, logger *slog.Logger) *DrawerService {
	return &DrawerService{drawers: drawers, clock: clock, logger: logger}
}

func (s *DrawerService) Create(ctx context.Context, actor domain.Actor, in DrawerInput) (*domain.CashDrawer, error) {
	drawer := &domain.CashDrawer{
		UserID:        actor.ID,
		Workstation:   in.Workstation,
		ShiftNumber:   in.ShiftNumber,
		Date:          in.Date,
		StartingCash:  in.StartingCash,
		Denominations: in.Denominations,
		Status:        in.Status,
		CreatedAt:     s.clock.Timestamp(),
	}
	if drawer.Status == "" {
		drawer.Status = domain.StatusSubmitted
	}
	if err := validateDrawer(drawer); err != nil {
		return nil, err
	}
	drawer.TotalCash = drawer.Denominations.Total()

	created, err := s.drawers.Create(ctx, drawer)
	if errors.Is(err, store.ErrDuplicate) {
		return nil, domain.Conflictf(drawerConflictMessage)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create cash drawer: %w", err)
	}
	s.logger.Info("cash drawer created", "drawer_id", created.ID, "user_id", actor.ID, "status", created.Status)
	return created, nil
}

func (s *DrawerService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.CashDrawer, error) {
	drawer, err := s.drawers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash drawer: %w", err)
	}
	if drawer == nil {
		return nil, domain.NotFoundf("Cash drawer not found")
	}
	if !actor.Owns(drawer.UserID) {
		return nil, domain.Forbiddenf("You can only access your own cash drawers")
	}
	return drawer, nil
}

// List returns drawers dated within r. Non-admins only see their own.
func (s *DrawerService) List(ctx context.Context, actor domain.Actor, r domain.DateRange) ([]*domain.CashDrawer, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}
	drawers, err := s.drawers.ListByDateRange(ctx, r, actor.ScopeUserID())
	if err != nil {
		return nil, fmt.Errorf("failed to list cash drawers: %w", err)
	}
	return drawers, nil
}

// Update applies p to a drafted drawer. The only status change allowed is
// drafted to submitted.
func (s *DrawerService) Update(ctx context.Context, actor domain.Actor, id int64, p DrawerPatch) (*domain.CashDrawer, error) {
	drawer, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if drawer.Status != domain.StatusDrafted {
		return nil, domain.Validationf("Only drafted cash drawers can be edited")
	}

	if p.Workstation != nil {
		drawer.Workstation = *p.Workstation
	}
	if p.ShiftNumber != nil {
		drawer.ShiftNumber = *p.ShiftNumber
	}
	if p.Date != nil {
		drawer.Date = *p.Date
	}
	if p.StartingCash != nil {
		drawer.StartingCash = *p.StartingCash
	}
	if p.Status != nil {
		drawer.Status = *p.Status
	}
	if err := applyCounts(&drawer.Denominations, p.Counts); err != nil {
		return nil, err
	}
	if err := validateDrawer(drawer); err != nil {
		return nil, err
	}
	drawer.TotalCash = drawer.Denominations.Total()

	if err := s.drawers.Update(ctx, drawer); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, domain.Conflictf(drawerConflictMessage)
		}
		return nil, notFound(err, "cash drawer")
	}
	return s.Get(ctx, actor, id)
}

// Delete removes a drafted drawer owned by the actor.
func (s *DrawerService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	drawer, err := s.drawers.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get cash drawer: %w", err)
	}
	if drawer == nil {
		return domain.NotFoundf("Cash drawer not found")
	}
	if !actor.Owns(drawer.UserID) {
		return domain.Forbiddenf("You can only delete your own cash drawers")
	}
	if drawer.Status != domain.StatusDrafted {
		return domain.Validationf("Only drafted cash drawers can be deleted")
	}
	if err := s.drawers.Delete(ctx, id); err != nil {
		return notFound(err, "cash drawer")
	}
	s.logger.Info("cash drawer deleted", "drawer_id", id, "user_id", actor.ID)
	return nil
}

func validateDrawer(d *domain.CashDrawer) error {
	if err := validateShiftKey(d.Key()); err != nil {
		return err
	}
	if d.Status != domain.StatusDrafted && d.Status != domain.StatusSubmitted {
		return domain.Validationf("status must be drafted or submitted")
	}
	if d.StartingCash.IsNegative() {
		return domain.Validationf("starting_cash must not be negative")
	}
	return d.Denominations.Validate()
}
