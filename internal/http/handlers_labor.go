package http

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

type laborRequest struct {
	WorkerID      string           `json:"workerId"`
	WeekOf        core.Date        `json:"weekOf"`
	DaysWorked    int              `json:"daysWorked"`
	RegularHours  decimal.Decimal  `json:"regularHours"`
	OvertimeHours decimal.Decimal  `json:"overtimeHours"`
	OvertimeRate  *decimal.Decimal `json:"overtimeRate"`
	IsPaid        bool             `json:"isPaid"`
	Notes         string           `json:"notes"`
}

// handleListLabor lists payments, or only one week's with ?week=.
func (s *Server) handleListLabor(w http.ResponseWriter, r *http.Request) {
	payments := s.repo.ListLaborPayments(r.Context())
	if r.URL.Query().Get("week") == "" {
		writeJSON(w, http.StatusOK, payments)
		return
	}
	weekOf, err := ParseDateParam(r.URL.Query(), "week", s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpList)
		return
	}
	start := core.WeekStart(weekOf)
	out := make([]core.LaborPayment, 0, len(payments))
	for _, p := range payments {
		if p.WeekStart.Equal(start.Time) {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateLabor computes the payment from the worker's current rate.
func (s *Server) handleCreateLabor(w http.ResponseWriter, r *http.Request) {
	var req laborRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	worker, err := s.repo.GetWorker(r.Context(), req.WorkerID)
	if err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	p, err := core.NewLaborPayment(core.LaborInput{
		Worker:        worker,
		WeekOf:        req.WeekOf,
		DaysWorked:    req.DaysWorked,
		RegularHours:  req.RegularHours,
		OvertimeHours: req.OvertimeHours,
		OvertimeRate:  amountOrZero(req.OvertimeRate),
		IsPaid:        req.IsPaid,
		Notes:         sanitizeInput(req.Notes),
	}, s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	if err := s.repo.SaveLaborPayment(r.Context(), p); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "labor_payment", p.ID)
	writeJSON(w, http.StatusCreated, p)
}

// handlePayLabor marks a payment paid, which records its companion expense.
func (s *Server) handlePayLabor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payment *core.LaborPayment
	for _, p := range s.repo.ListLaborPayments(r.Context()) {
		if p.ID == id {
			payment = &p
			break
		}
	}
	if payment == nil {
		s.writeError(w, r, fmt.Errorf("labor payment %s: %w", id, storage.ErrNotFound), log.OpUpdate)
		return
	}
	payment.IsPaid = true
	if err := s.repo.SaveLaborPayment(r.Context(), *payment); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpUpdate, "labor_payment", id)
	writeJSON(w, http.StatusOK, payment)
}

func (s *Server) handleDeleteLabor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.DeleteLaborPayment(r.Context(), id); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpDelete, "labor_payment", id)
	noContent(w)
}

func (s *Server) handleLaborWeek(w http.ResponseWriter, r *http.Request) {
	weekOf, err := ParseDateParam(r.URL.Query(), "date", s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, s.repo.GetWeekSummary(r.Context(), weekOf))
}

type workAmountRequest struct {
	Days        decimal.Decimal `json:"days"`
	HoursPerDay decimal.Decimal `json:"hoursPerDay"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func (s *Server) handleWorkAmount(w http.ResponseWriter, r *http.Request) {
	var req workAmountRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"amount":  core.WorkAmount(req.Days, req.HoursPerDay, req.HourlyRate, req.Quantity, req.UnitPrice),
		"formula": core.WorkFormulaText(req.Days, req.HoursPerDay, req.HourlyRate),
	})
}
