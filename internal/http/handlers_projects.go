package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"buildledger/internal/budget"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/log"
	"buildledger/internal/refdata"
)

// Plugins

func (s *Server) handleListPlugins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.ListPlugins(r.Context()))
}

type toggleRequest struct {
	Installed bool `json:"installed"`
	Enabled   bool `json:"enabled"`
}

func (s *Server) handleTogglePlugin(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	p, err := s.repo.TogglePlugin(r.Context(), r.PathValue("id"), req.Installed, req.Enabled)
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Material estimates

type materialsRequest struct {
	Name   string          `json:"name"`
	Area   decimal.Decimal `json:"area"`
	Floors int             `json:"floors"`
}

func (s *Server) handleCalculateMaterials(w http.ResponseWriter, r *http.Request) {
	var req materialsRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	if !req.Area.IsPositive() {
		s.writeError(w, r, core.ErrInvalidArea, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, core.CalculateMaterials(req.Area, req.Floors))
}

func (s *Server) handleMaterialCost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Lines []refdata.CostLine `json:"lines"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, refdata.MaterialCost(req.Lines))
}

func (s *Server) handleListEstimates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.ListMaterialEstimates(r.Context()))
}

func (s *Server) handleCreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req materialsRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	e, err := core.NewMaterialEstimate(sanitizeInput(req.Name), req.Area, req.Floors, s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	if err := s.repo.SaveMaterialEstimate(r.Context(), e); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "material_estimate", e.ID)
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleDeleteEstimate(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteMaterialEstimate(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	noContent(w)
}

// Invoices

type invoiceRequest struct {
	TemplateID      string              `json:"templateId"`
	Seller          invoice.Seller      `json:"seller"`
	Buyer           invoice.Buyer       `json:"buyer"`
	Items           []invoice.ItemInput `json:"items"`
	Project         *invoice.Project    `json:"project"`
	Currency        string              `json:"currency"`
	VATRate         *decimal.Decimal    `json:"vatRate"`
	DiscountPercent *decimal.Decimal    `json:"discountPercent"`
	Notes           string              `json:"notes"`
	Terms           string              `json:"terms"`
	DueDate         *core.Date          `json:"dueDate"`
}

// invoiceView adds display strings to an invoice.
type invoiceView struct {
	invoice.Invoice
	invoice.Formatted
}

func viewInvoice(inv invoice.Invoice) invoiceView {
	return invoiceView{Invoice: inv, Formatted: invoice.Format(inv)}
}

func (s *Server) handleInvoiceTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, invoice.Templates())
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.ListInvoices(r.Context()))
}

func (s *Server) handleInvoiceSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, invoice.Summarize(s.repo.ListInvoices(r.Context()), s.now()))
}

// handleCreateInvoice starts from a template when templateId is set; the
// template's items then replace any items in the request.
func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	opts := invoice.Options{
		Project:         req.Project,
		Currency:        strings.ToUpper(strings.TrimSpace(req.Currency)),
		VATRate:         req.VATRate,
		DiscountPercent: req.DiscountPercent,
		Notes:           sanitizeInput(req.Notes),
		Terms:           sanitizeInput(req.Terms),
		DueDate:         req.DueDate,
	}

	var inv invoice.Invoice
	if req.TemplateID != "" {
		var err error
		inv, err = invoice.FromTemplate(req.TemplateID, req.Seller, req.Buyer, opts)
		if err != nil {
			s.writeError(w, r, err, log.OpCreate)
			return
		}
	} else {
		inv = invoice.New(req.Seller, req.Buyer, req.Items, opts)
	}

	if err := s.repo.SaveInvoice(r.Context(), inv); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "invoice", inv.ID)
	writeJSON(w, http.StatusCreated, viewInvoice(inv))
}

func (s *Server) handleGetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := s.repo.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, viewInvoice(inv))
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.DeleteInvoice(r.Context(), id); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpDelete, "invoice", id)
	noContent(w)
}

type invoiceStatusRequest struct {
	Status     string           `json:"status"`
	AmountPaid *decimal.Decimal `json:"amountPaid"`
}

func (s *Server) handleInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	inv, err := s.repo.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	var req invoiceStatusRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	status, err := invoice.ParseStatus(req.Status)
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	inv, err = invoice.UpdateStatus(inv, status, req.AmountPaid)
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveInvoice(w, r, inv)
}

func (s *Server) handleAddInvoiceItem(w http.ResponseWriter, r *http.Request) {
	inv, err := s.repo.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	var item invoice.ItemInput
	if err := decodeJSON(w, r, &item, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveInvoice(w, r, invoice.AddItem(inv, item))
}

func (s *Server) handleRemoveInvoiceItem(w http.ResponseWriter, r *http.Request) {
	inv, err := s.repo.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveInvoice(w, r, invoice.RemoveItem(inv, r.PathValue("itemId")))
}

func (s *Server) saveInvoice(w http.ResponseWriter, r *http.Request, inv invoice.Invoice) {
	if err := s.repo.SaveInvoice(r.Context(), inv); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpUpdate, "invoice", inv.ID)
	writeJSON(w, http.StatusOK, viewInvoice(inv))
}

func (s *Server) handleInvoiceCSV(w http.ResponseWriter, r *http.Request) {
	inv, err := s.repo.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "text/csv; charset=utf-8", "invoice-"+inv.InvoiceNumber+".csv", []byte(invoice.ExportCSV(inv)))
}

// Budgets

type budgetRequest struct {
	TemplateID     string     `json:"templateId"`
	Name           string     `json:"name"`
	NameBn         string     `json:"nameBn"`
	Description    string     `json:"description"`
	ProjectName    string     `json:"projectName"`
	ProjectAddress string     `json:"projectAddress"`
	StartDate      *core.Date `json:"startDate"`
	EndDate        *core.Date `json:"endDate"`
	Currency       string     `json:"currency"`
}

// budgetView keeps the display strings apart: both carry a "status".
type budgetView struct {
	budget.Budget
	Formatted  budget.Formatted       `json:"formatted"`
	ByCategory []budget.CategoryTotal `json:"byCategory"`
}

func viewBudget(b budget.Budget) budgetView {
	return budgetView{Budget: b, Formatted: budget.Format(b), ByCategory: budget.ByCategory(b)}
}

func (s *Server) handleBudgetTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, budget.Templates())
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.ListBudgets(r.Context()))
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	opts := budget.Options{
		NameBn:         sanitizeInput(req.NameBn),
		Description:    sanitizeInput(req.Description),
		ProjectAddress: sanitizeInput(req.ProjectAddress),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Currency:       strings.ToUpper(strings.TrimSpace(req.Currency)),
	}

	var b budget.Budget
	if req.TemplateID != "" {
		var err error
		b, err = budget.FromTemplate(req.TemplateID, sanitizeInput(req.ProjectName), opts)
		if err != nil {
			s.writeError(w, r, err, log.OpCreate)
			return
		}
		if name := sanitizeInput(req.Name); name != "" {
			b.Name = name
		}
	} else {
		b = budget.New(sanitizeInput(req.Name), sanitizeInput(req.ProjectName), opts)
	}

	if err := s.repo.SaveBudget(r.Context(), b); err != nil {
		s.writeError(w, r, err, log.OpCreate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpCreate, "budget", b.ID)
	writeJSON(w, http.StatusCreated, viewBudget(b))
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, viewBudget(b))
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.repo.DeleteBudget(r.Context(), id); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpDelete, "budget", id)
	noContent(w)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	status, err := budget.ParseStatus(req.Status)
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	b.Status = status
	b.UpdatedAt = s.now().UTC()
	s.saveBudget(w, r, b)
}

func (s *Server) handleAddBudgetItem(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	var item budget.ItemInput
	if err := decodeJSON(w, r, &item, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveBudget(w, r, budget.AddItem(b, item))
}

func (s *Server) handleBudgetActual(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	itemID := r.PathValue("itemId")
	if !b.HasItem(itemID) {
		s.writeError(w, r, budget.ErrItemNotFound, log.OpUpdate)
		return
	}
	var req struct {
		ActualAmount decimal.Decimal `json:"actualAmount"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveBudget(w, r, budget.UpdateItemActual(b, itemID, req.ActualAmount))
}

func (s *Server) handleRemoveBudgetItem(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.saveBudget(w, r, budget.RemoveItem(b, r.PathValue("itemId")))
}

func (s *Server) saveBudget(w http.ResponseWriter, r *http.Request, b budget.Budget) {
	if err := s.repo.SaveBudget(r.Context(), b); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	s.events.LogRecordChanged(r.Context(), log.OpUpdate, "budget", b.ID)
	writeJSON(w, http.StatusOK, viewBudget(b))
}

func (s *Server) handleBudgetAlerts(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, budget.CheckAlerts(b))
}

// handleBudgetReport returns the plain-text report, or JSON with ?format=json.
func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	report := budget.GenerateReport(b)
	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, report)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report.String()))
}

func (s *Server) handleBudgetCSV(w http.ResponseWriter, r *http.Request) {
	b, err := s.repo.GetBudget(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "text/csv; charset=utf-8", "budget-"+b.ID+".csv", []byte(budget.ExportCSV(b)))
}
