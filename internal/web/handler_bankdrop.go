package web

import (
	"net/http"
)

func (s *Server) handleBankDropData(w http.ResponseWriter, r *http.Request) {
	views, err := s.svc.BankDrops.BankDropData(r.Context(), actorFrom(r.Context()), dateRange(r))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toReconcilersJSON(r, views))
}

func (s *Server) handleBankDropDataByBatches(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	batches, err := p.stringList("batch_numbers")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	views, err := s.svc.BankDrops.BankDropDataByBatches(r.Context(), actorFrom(r.Context()), batches)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toReconcilersJSON(r, views))
}

func (s *Server) handleBatchHistory(w http.ResponseWriter, r *http.Request) {
	batches, err := s.svc.BankDrops.BatchHistory(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toBatchesJSON(batches))
}

func (s *Server) handleBankDropSummary(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	ids, err := p.stringList("cash_drop_ids")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	batches, err := p.stringList("batch_numbers")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	summary, err := s.svc.BankDrops.Summary(r.Context(), actorFrom(r.Context()), ids, batches)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toSummaryJSON(r, summary))
}

func (s *Server) handleMarkBankDropped(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.decodePayload(w, r, false)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	ids, err := p.stringList("cash_drop_ids")
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	result, err := s.svc.BankDrops.MarkBankDropped(r.Context(), actorFrom(r.Context()), ids, p.str("batch_number"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toMarkJSON(result))
}
