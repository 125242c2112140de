package web

import (
	"net/http"

	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/service"
)

func (s *Server) handleCreateDrop(w http.ResponseWriter, r *http.Request) {
	p, label, err := s.decodePayload(w, r, true)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	in, err := dropInput(p)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	in.Label = label

	drop, err := s.svc.Drops.Create(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toDropJSON(r, drop))
}

func (s *Server) handleListDrops(w http.ResponseWriter, r *http.Request) {
	drops, err := s.svc.Drops.List(r.Context(), actorFrom(r.Context()), dateRange(r))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDropsJSON(r, drops))
}

// handleValidateDrop runs the duplicate check a client performs before
// writing the drawer that will be paired with a drop.
func (s *Server) handleValidateDrop(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	selfID, err := p.optInt64("draft_id")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	key := domain.ShiftKey{
		Workstation: p.str("workstation"),
		ShiftNumber: p.str("shift_number"),
		Date:        p.str("date"),
	}
	if err := s.svc.Drops.Validate(r.Context(), actorFrom(r.Context()), key, selfID); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleIgnoreDrop(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	id, err := p.optInt64("id")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if id == nil {
		respondError(w, http.StatusBadRequest, "ID is required")
		return
	}
	drop, err := s.svc.Drops.Ignore(r.Context(), actorFrom(r.Context()), *id, p.str("ignore_reason"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDropJSON(r, drop))
}

func (s *Server) handleGetDrop(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	drop, err := s.svc.Drops.Get(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDropJSON(r, drop))
}

func (s *Server) handleUpdateDrop(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	p, label, err := s.decodePayload(w, r, true)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	patch, err := dropPatch(p)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	patch.Label = label

	drop, err := s.svc.Drops.Update(r.Context(), actorFrom(r.Context()), id, patch)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDropJSON(r, drop))
}

func (s *Server) handleDeleteDrop(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if err := s.svc.Drops.Delete(r.Context(), actorFrom(r.Context()), id); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cash drop deleted"})
}

func (s *Server) handleUpdateDenominations(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	counts, err := p.counts()
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	drop, err := s.svc.Drops.UpdateDenominations(r.Context(), actorFrom(r.Context()), id, counts)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDropJSON(r, drop))
}

func dropInput(p payload) (service.DropInput, error) {
	in := service.DropInput{
		Workstation: p.str("workstation"),
		ShiftNumber: p.str("shift_number"),
		Date:        p.str("date"),
		Notes:       p.optString("notes"),
	}
	if status := p.optStatus("status"); status != nil {
		in.Status = *status
	}
	var err error
	if in.DrawerEntryID, err = p.optInt64("drawer_entry_id"); err != nil {
		return in, err
	}
	if in.WSLabelAmount, err = p.optDecimal("ws_label_amount"); err != nil {
		return in, err
	}
	if in.Denominations, err = p.denominations(); err != nil {
		return in, err
	}
	return in, nil
}

func dropPatch(p payload) (service.DropPatch, error) {
	patch := service.DropPatch{
		Workstation: p.optString("workstation"),
		ShiftNumber: p.optString("shift_number"),
		Date:        p.optString("date"),
		Notes:       p.optString("notes"),
		Status:      p.optStatus("status"),
	}
	var err error
	if patch.DrawerEntryID, err = p.optInt64("drawer_entry_id"); err != nil {
		return patch, err
	}
	if patch.WSLabelAmount, err = p.optDecimal("ws_label_amount"); err != nil {
		return patch, err
	}
	if patch.Counts, err = p.counts(); err != nil {
		return patch, err
	}
	return patch, nil
}
