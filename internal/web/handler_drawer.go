package web

import (
	"net/http"

	"github.com/vbonduro/cashdrop/internal/service"
)

func (s *Server) handleCreateDrawer(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	startingCash, err := p.optDecimal("starting_cash")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if startingCash == nil {
		respondError(w, http.StatusBadRequest,
			"Missing required fields: workstation, shift_number, date, and starting_cash are required")
		return
	}
	counts, err := p.denominations()
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	in := service.DrawerInput{
		Workstation:   p.str("workstation"),
		ShiftNumber:   p.str("shift_number"),
		Date:          p.str("date"),
		StartingCash:  *startingCash,
		Denominations: counts,
	}
	if status := p.optStatus("status"); status != nil {
		in.Status = *status
	}

	drawer, err := s.svc.Drawers.Create(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toDrawerJSON(drawer))
}

func (s *Server) handleListDrawers(w http.ResponseWriter, r *http.Request) {
	drawers, err := s.svc.Drawers.List(r.Context(), actorFrom(r.Context()), dateRange(r))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	out := make([]drawerJSON, 0, len(drawers))
	for _, d := range drawers {
		out = append(out, toDrawerJSON(d))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetDrawer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	drawer, err := s.svc.Drawers.Get(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDrawerJSON(drawer))
}

func (s *Server) handleUpdateDrawer(w http.ResponseWriter, r *http.Request) {
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
	patch, err := drawerPatch(p)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	drawer, err := s.svc.Drawers.Update(r.Context(), actorFrom(r.Context()), id, patch)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toDrawerJSON(drawer))
}

func (s *Server) handleDeleteDrawer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if err := s.svc.Drawers.Delete(r.Context(), actorFrom(r.Context()), id); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cash drawer deleted"})
}

func drawerPatch(p payload) (service.DrawerPatch, error) {
	patch := service.DrawerPatch{
		Workstation: p.optString("workstation"),
		ShiftNumber: p.optString("shift_number"),
		Date:        p.optString("date"),
		Status:      p.optStatus("status"),
	}
	var err error
	if patch.StartingCash, err = p.optDecimal("starting_cash"); err != nil {
		return patch, err
	}
	if patch.Counts, err = p.counts(); err != nil {
		return patch, err
	}
	return patch, nil
}

