package web

import (
	"net/http"

	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/service"
)

func (s *Server) handleListReconcilers(w http.ResponseWriter, r *http.Request) {
	views, err := s.svc.Reconcile.List(r.Context(), actorFrom(r.Context()), dateRange(r))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toReconcilersJSON(r, views))
}

// handleReconcile records or clears the admin count. A replacement
// breakdown may be sent as a nested "denominations" object.
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	in, err := reconcileInput(p)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if in.ID == 0 {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}

	view, err := s.svc.Reconcile.Reconcile(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toReconcilerJSON(r, view))
}

// reconcileInput reads the reconcile body. is_reconciled picks the path and
// must be sent explicitly.
func reconcileInput(p payload) (service.ReconcileInput, error) {
	in := service.ReconcileInput{Notes: p.optString("notes")}

	id, err := p.optInt64("id")
	if err != nil {
		return in, err
	}
	if id != nil {
		in.ID = *id
	}
	reconciled, err := p.optBool("is_reconciled")
	if err != nil {
		return in, err
	}
	if reconciled == nil {
		return in, domain.Validationf("is_reconciled is required")
	}
	in.IsReconciled = *reconciled
	if in.AdminCountAmount, err = p.optDecimal("admin_count_amount"); err != nil {
		return in, err
	}

	nested, err := p.object("denominations")
	if err != nil || nested == nil {
		return in, err
	}
	counts, err := nested.denominations()
	if err != nil {
		return in, err
	}
	in.Denominations = &counts
	return in, nil
}
