package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

type transactionRequest struct {
	Type        core.TransactionType     `json:"type"`
	Amount      decimal.Decimal          `json:"amount"`
	Category    core.TransactionCategory `json:"category"`
	Description string                   `json:"description"`
	Date        core.Date                `json:"date"`
}

func (req transactionRequest) apply(t core.Transaction, now core.Date) core.Transaction {
	t.Type = req.Type
	t.Amount = req.Amount
	t.Category = req.Category
	t.Description = sanitizeInput(req.Description)
	t.Date = req.Date
	if t.Date.IsZero() {
		t.Date = now
	}
	return t
}

// handleListTransactions lists newest first, optionally filtered by
// ?type= and ?category=.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	typ := core.TransactionType(strings.TrimSpace(r.URL.Query().Get("type")))
	cat := core.TransactionCategory(strings.TrimSpace(r.URL.Query().Get("category")))

	txs := s.repo.ListTransactions(r.Context())
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if typ != "" && t.Type != typ {
			continue
		}
		if cat != "" && t.Category != cat {
			continue
		}
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	now := s.now()
	t := req.apply(core.Transaction{ID: core.NewID(), CreatedAt: now.UTC()}, core.DateOf(now))
	if err := s.repo.SaveTransaction(r.Context(), t); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "transaction", t.ID)
	writeJSON(w, http.StatusCreated, t)
}

// handleUpdateTransaction replaces a transaction, keeping its creation time.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var existing *core.Transaction
	for _, t := range s.repo.ListTransactions(r.Context()) {
		if t.ID == id {
			existing = &t
			break
		}
	}
	if existing == nil {
		s.writeError(w, r, storage.ErrNotFound, log.OpUpdate)
		return
	}

	var req transactionRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	t := req.apply(*existing, core.DateOf(s.now()))
	if err := s.repo.SaveTransaction(r.Context(), t); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpUpdate, "transaction", t.ID)
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.DeleteTransaction(r.Context(), id); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpDelete, "transaction", id)
	noContent(w)
}

func (s *Server) handleFinancialSummary(w http.ResponseWriter, r *http.Request) {
	period, err := ParsePeriod(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	summary, err := s.repo.GetFinancialSummary(r.Context(), period, s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Period core.PeriodFilter `json:"period"`
		core.FinancialSummary
	}{period, summary})
}

type workerRequest struct {
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

func (s *Server) handleListWorkers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.ListWorkers(r.Context()))
}

func (s *Server) handleGetWorker(w http.ResponseWriter, r *http.Request) {
	worker, err := s.repo.GetWorker(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, worker)
}

func (s *Server) handleCreateWorker(w http.ResponseWriter, r *http.Request) {
	var req workerRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	worker := core.Worker{
		ID:         core.NewID(),
		Name:       sanitizeInput(req.Name),
		HourlyRate: req.HourlyRate,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.SaveWorker(r.Context(), worker); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "worker", worker.ID)
	writeJSON(w, http.StatusCreated, worker)
}

// handleUpdateWorker changes name and rate. Past labor payments keep the
// rate they were computed with.
func (s *Server) handleUpdateWorker(w http.ResponseWriter, r *http.Request) {
	worker, err := s.repo.GetWorker(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	var req workerRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	worker.Name = sanitizeInput(req.Name)
	worker.HourlyRate = req.HourlyRate
	if err := s.repo.SaveWorker(r.Context(), worker); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpUpdate, "worker", worker.ID)
	writeJSON(w, http.StatusOK, worker)
}

func (s *Server) handleDeleteWorker(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.DeleteWorker(r.Context(), id); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpDelete, "worker", id)
	noContent(w)
}
