package http

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/log"
	"buildledger/internal/refdata"
	"buildledger/internal/tax"
)

type vatRequest struct {
	Amount decimal.Decimal `json:"amount"`
	// Rate is a percentage; when missing, Material picks it, else the standard rate.
	Rate      *decimal.Decimal `json:"rate"`
	Material  string           `json:"material"`
	Inclusive bool             `json:"inclusive"`
}

type vatResponse struct {
	Base  decimal.Decimal `json:"base"`
	VAT   decimal.Decimal `json:"vat"`
	Total decimal.Decimal `json:"total"`
	Rate  decimal.Decimal `json:"rate"`
}

func (s *Server) handleVAT(w http.ResponseWriter, r *http.Request) {
	var req vatRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	if req.Amount.IsNegative() {
		s.writeError(w, r, core.ErrInvalidAmount, log.OpRead)
		return
	}
	rate := refdata.VATStandard
	switch {
	case req.Rate != nil:
		rate = *req.Rate
	case req.Material != "":
		rate = tax.MaterialVATRate(strings.ToLower(req.Material))
	}

	resp := vatResponse{Rate: rate}
	if req.Inclusive {
		resp.Base, resp.VAT = tax.ExtractVATFromInclusive(req.Amount, rate)
		resp.Total = req.Amount
	} else {
		resp.Base = req.Amount
		resp.VAT = tax.VAT(req.Amount, rate)
		resp.Total = tax.PriceWithVAT(req.Amount, rate)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIncomeTax(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AnnualIncome decimal.Decimal `json:"annualIncome"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, tax.IncomeTax(req.AnnualIncome))
}

func (s *Server) handleRebate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Investment decimal.Decimal `json:"investment"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, tax.InvestmentRebate(req.Investment))
}

func (s *Server) handleTaxSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GrossIncome decimal.Decimal `json:"grossIncome"`
		Deductions  decimal.Decimal `json:"deductions"`
		Investment  decimal.Decimal `json:"investment"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, tax.Calculate(req.GrossIncome, req.Deductions, req.Investment))
}

func (s *Server) handleTaxInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items   []tax.InvoiceLine `json:"items"`
		VATRate *decimal.Decimal  `json:"vatRate"`
	}
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	rate := refdata.VATStandard
	if req.VATRate != nil {
		rate = *req.VATRate
	}
	writeJSON(w, http.StatusOK, tax.GenerateInvoice(req.Items, rate))
}

func (s *Server) handleTaxYear(w http.ResponseWriter, r *http.Request) {
	y := tax.CurrentYear(s.now())
	writeJSON(w, http.StatusOK, struct {
		tax.Year
		Label string `json:"label"`
	}{y, y.Label()})
}

func (s *Server) handleTaxRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"vatCategories":  refdata.VATCategories(),
		"incomeTaxSlabs": refdata.IncomeTaxSlabs(),
		"corporateTax":   refdata.CorporateTax,
		"ait":            refdata.AIT,
		"advanceTax":     refdata.AdvanceTax,
		"nbr":            refdata.NBR,
	})
}

// Reference data

// handleCategories returns expense categories, or income ones with ?type=income.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("type") {
	case "income":
		writeJSON(w, http.StatusOK, refdata.IncomeCategories())
	case "all":
		writeJSON(w, http.StatusOK, refdata.AllCategories())
	default:
		writeJSON(w, http.StatusOK, refdata.ExpenseCategories())
	}
}

func (s *Server) handleQuickExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.QuickExpenses())
}

// handlePrices searches items with ?q=, otherwise returns every category.
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		writeJSON(w, http.StatusOK, refdata.SearchPriceItems(q))
		return
	}
	writeJSON(w, http.StatusOK, refdata.AllPriceCategories())
}

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, refdata.AllCurrencies())
}

type convertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}

func (s *Server) handleConvertCurrency(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(w, r, &req, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	to := strings.ToUpper(req.To)
	converted := refdata.ConvertCurrency(req.Amount, strings.ToUpper(req.From), to)
	writeJSON(w, http.StatusOK, map[string]any{
		"amount":    converted,
		"currency":  refdata.CurrencyByCode(to).Code,
		"formatted": refdata.FormatCurrency(converted, to),
	})
}

func (s *Server) handleGetCurrencySettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.GetCurrencySettings(r.Context()))
}

func (s *Server) handleSaveCurrencySettings(w http.ResponseWriter, r *http.Request) {
	settings := s.repo.GetCurrencySettings(r.Context())
	if err := decodeJSON(w, r, &settings, maxBodyBytes); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	if err := s.repo.SaveCurrencySettings(r.Context(), settings); err != nil {
		s.writeError(w, r, err, log.OpUpdate)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
