package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vbonduro/cashdrop/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a use-case error onto its HTTP status. Anything
// outside the domain taxonomy is logged and reported generically.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
			respondError(w, http.StatusBadRequest, derr.Message)
			return
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, derr.Message)
			return
		case errors.Is(err, domain.ErrForbidden):
			respondError(w, http.StatusForbidden, derr.Message)
			return
		}
	}
	s.logger.Error("request failed",
		"method", r.Method, "path", r.URL.Path, "user_id", actorFrom(r.Context()).ID, "error", err)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// parseID reads the {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("Invalid id")
	}
	return id, nil
}

// dateRange reads the datefrom and dateto query parameters.
func dateRange(r *http.Request) domain.DateRange {
	q := r.URL.Query()
	return domain.DateRange{From: q.Get("datefrom"), To: q.Get("dateto")}
}
