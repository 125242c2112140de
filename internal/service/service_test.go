package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/bizclock"
	"github.com/vbonduro/cashdrop/internal/db"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/labelreader"
	"github.com/vbonduro/cashdrop/internal/labelstore"
	"github.com/vbonduro/cashdrop/internal/store"
)

// stubLabelStore is a minimal in-memory labelstore.LabelStore for tests.
type stubLabelStore struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
	n       int
}

func newStubLabelStore() *stubLabelStore {
	return &stubLabelStore{saved: make(map[string][]byte)}
}

func (s *stubLabelStore) Save(_ context.Context, prefix, _ string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	data, _ := io.ReadAll(r)
	s.n++
	key := fmt.Sprintf("%s_%d.jpg", prefix, s.n)
	s.saved[key] = data
	return key, nil
}

func (s *stubLabelStore) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := s.saved[key]
	if !ok {
		return nil, "", labelstore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), "image/jpeg", nil
}

func (s *stubLabelStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	if _, ok := s.saved[key]; !ok {
		return labelstore.ErrNotFound
	}
	delete(s.saved, key)
	return nil
}

// stubReader is a labelreader.Reader returning a fixed amount.
type stubReader struct {
	amount decimal.Decimal
	err    error
	calls  int
}

func (s *stubReader) ReadTotal(_ context.Context, _ io.Reader, _ string) (decimal.Decimal, error) {
	s.calls++
	return s.amount, s.err
}

type testEnv struct {
	users     *store.UserStore
	drawers   *DrawerService
	drops     *DropService
	reconcile *ReconcileService
	bank      *BankDropService
	labels    *stubLabelStore
	clock     *bizclock.Clock

	clerk, other, admin domain.Actor
	today, yesterday    string
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClock is frozen at 10:00 on 2025-03-02 in Los Angeles.
func testClock(t *testing.T) *bizclock.Clock {
	t.Helper()
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return bizclock.Fixed(time.Date(2025, 3, 2, 10, 0, 0, 0, la))
}

func newTestEnv(t *testing.T, reader labelreader.Reader) *testEnv {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	logger := discardLogger()
	clock := testClock(t)
	labels := newStubLabelStore()

	drawerStore := store.NewDrawerStore(d)
	dropStore := store.NewDropStore(d)
	reconcilerStore := store.NewReconcilerStore(d)
	batchStore := store.NewBatchStore(d)

	env := &testEnv{
		users:     store.NewUserStore(d),
		drawers:   NewDrawerService(drawerStore, clock, logger),
		drops:     NewDropService(dropStore, drawerStore, labels, reader, clock, logger),
		reconcile: NewReconcileService(reconcilerStore, dropStore, logger),
		bank:      NewBankDropService(dropStore, reconcilerStore, batchStore, clock, logger),
		labels:    labels,
		clock:     clock,
		today:     "2025-03-02",
		yesterday: "2025-03-01",
	}
	env.clerk = env.seedActor(t, "clerk@example.com", "Casey Clerk", false)
	env.other = env.seedActor(t, "other@example.com", "Oren Other", false)
	env.admin = env.seedActor(t, "admin@example.com", "Ada Admin", true)
	return env
}

func (e *testEnv) seedActor(t *testing.T, email, name string, admin bool) domain.Actor {
	t.Helper()
	u, err := e.users.Create(context.Background(), &domain.User{Email: email, Name: name, IsAdmin: admin})
	require.NoError(t, err)
	return domain.Actor{ID: u.ID, IsAdmin: u.IsAdmin}
}

func (e *testEnv) submitDrop(t *testing.T, actor domain.Actor, ws string, counts domain.Denominations) *domain.CashDrop {
	t.Helper()
	drop, err := e.drops.Create(context.Background(), actor, DropInput{
		Workstation:   ws,
		ShiftNumber:   "1",
		Date:          e.today,
		Denominations: counts,
		Status:        domain.StatusSubmitted,
	})
	require.NoError(t, err)
	return drop
}

func (e *testEnv) reconcilerFor(t *testing.T, dropID int64) *domain.ReconcilerView {
	t.Helper()
	views, err := e.reconcile.List(context.Background(), e.admin, domain.DateRange{From: "2025-01-01", To: "2025-12-31"})
	require.NoError(t, err)
	for _, v := range views {
		if v.DropEntryID == dropID {
			return v
		}
	}
	t.Fatalf("no reconciler for drop %d", dropID)
	return nil
}

// reconcileExact reconciles a drop at its own amount.
func (e *testEnv) reconcileExact(t *testing.T, drop *domain.CashDrop) {
	t.Helper()
	amount := drop.DropAmount
	_, err := e.reconcile.Reconcile(context.Background(), e.admin, ReconcileInput{
		ID:               e.reconcilerFor(t, drop.ID).ID,
		IsReconciled:     true,
		AdminCountAmount: &amount,
	})
	require.NoError(t, err)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }
