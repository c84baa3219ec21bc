// Package http serves the ledger as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"buildledger/internal/backup"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/middleware/ratelimit"
	"buildledger/internal/middleware/security"
	"buildledger/internal/middleware/trace"
	"buildledger/internal/storage"
)

// Deps are the services the handlers call.
type Deps struct {
	Repo   *storage.Repository
	Backup *backup.Service
	Logger *log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Options struct {
	RateLimitPerMinute int
}

type Server struct {
	http.Server

	repo   *storage.Repository
	backup *backup.Service
	store  kv.Store
	logger *log.Logger
	events *log.StructuredLogger
	now    func() time.Time

	limiter  *ratelimit.Limiter
	detector *security.Detector
	tracer   *trace.Middleware

	shutdownOnce sync.Once
}

// NewServer wires the routes and middleware and returns a server ready to
// ListenAndServe.
func NewServer(addr string, deps Deps, opts Options) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithComponent(log.ComponentHTTP)
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	limitCfg := ratelimit.DefaultConfig()
	if opts.RateLimitPerMinute > 0 {
		limitCfg.RequestsPerMinute = opts.RateLimitPerMinute
	}

	s := &Server{
		repo:     deps.Repo,
		backup:   deps.Backup,
		store:    deps.Repo.Store(),
		logger:   logger,
		events:   log.NewStructuredLogger(logger),
		now:      now,
		limiter:  ratelimit.NewLimiter(limitCfg),
		detector: security.NewDetector(logger),
	}
	s.tracer = trace.NewMiddleware(logger, s.detector.ExtractClientIP)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("/api/", security.NoStore(s.apiRoutes()))

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	var h http.Handler = mux
	h = s.limitWrites(h)
	h = headers.Middleware(h)
	h = s.detector.Middleware(h)
	h = s.tracer.Middleware(h)
	h = log.Middleware(logger)(h)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) apiRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("GET /api/summary", s.handleFinancialSummary)

	mux.HandleFunc("GET /api/workers", s.handleListWorkers)
	mux.HandleFunc("POST /api/workers", s.handleCreateWorker)
	mux.HandleFunc("GET /api/workers/{id}", s.handleGetWorker)
	mux.HandleFunc("PUT /api/workers/{id}", s.handleUpdateWorker)
	mux.HandleFunc("DELETE /api/workers/{id}", s.handleDeleteWorker)

	mux.HandleFunc("GET /api/labor", s.handleListLabor)
	mux.HandleFunc("POST /api/labor", s.handleCreateLabor)
	mux.HandleFunc("GET /api/labor/week", s.handleLaborWeek)
	mux.HandleFunc("POST /api/labor/work-amount", s.handleWorkAmount)
	mux.HandleFunc("POST /api/labor/{id}/pay", s.handlePayLabor)
	mux.HandleFunc("DELETE /api/labor/{id}", s.handleDeleteLabor)

	mux.HandleFunc("GET /api/plugins", s.handleListPlugins)
	mux.HandleFunc("PATCH /api/plugins/{id}", s.handleTogglePlugin)

	mux.HandleFunc("POST /api/materials/calculate", s.handleCalculateMaterials)
	mux.HandleFunc("POST /api/materials/cost", s.handleMaterialCost)
	mux.HandleFunc("GET /api/materials", s.handleListEstimates)
	mux.HandleFunc("POST /api/materials", s.handleCreateEstimate)
	mux.HandleFunc("DELETE /api/materials/{id}", s.handleDeleteEstimate)

	mux.HandleFunc("GET /api/invoices/templates", s.handleInvoiceTemplates)
	mux.HandleFunc("GET /api/invoices/summary", s.handleInvoiceSummary)
	mux.HandleFunc("GET /api/invoices", s.handleListInvoices)
	mux.HandleFunc("POST /api/invoices", s.handleCreateInvoice)
	mux.HandleFunc("GET /api/invoices/{id}", s.handleGetInvoice)
	mux.HandleFunc("DELETE /api/invoices/{id}", s.handleDeleteInvoice)
	mux.HandleFunc("PATCH /api/invoices/{id}/status", s.handleInvoiceStatus)
	mux.HandleFunc("POST /api/invoices/{id}/items", s.handleAddInvoiceItem)
	mux.HandleFunc("DELETE /api/invoices/{id}/items/{itemId}", s.handleRemoveInvoiceItem)
	mux.HandleFunc("GET /api/invoices/{id}/csv", s.handleInvoiceCSV)

	mux.HandleFunc("GET /api/budgets/templates", s.handleBudgetTemplates)
	mux.HandleFunc("GET /api/budgets", s.handleListBudgets)
	mux.HandleFunc("POST /api/budgets", s.handleCreateBudget)
	mux.HandleFunc("GET /api/budgets/{id}", s.handleGetBudget)
	mux.HandleFunc("DELETE /api/budgets/{id}", s.handleDeleteBudget)
	mux.HandleFunc("PATCH /api/budgets/{id}/status", s.handleBudgetStatus)
	mux.HandleFunc("POST /api/budgets/{id}/items", s.handleAddBudgetItem)
	mux.HandleFunc("PUT /api/budgets/{id}/items/{itemId}/actual", s.handleBudgetActual)
	mux.HandleFunc("DELETE /api/budgets/{id}/items/{itemId}", s.handleRemoveBudgetItem)
	mux.HandleFunc("GET /api/budgets/{id}/alerts", s.handleBudgetAlerts)
	mux.HandleFunc("GET /api/budgets/{id}/report", s.handleBudgetReport)
	mux.HandleFunc("GET /api/budgets/{id}/csv", s.handleBudgetCSV)

	mux.HandleFunc("POST /api/tax/vat", s.handleVAT)
	mux.HandleFunc("POST /api/tax/income", s.handleIncomeTax)
	mux.HandleFunc("POST /api/tax/rebate", s.handleRebate)
	mux.HandleFunc("POST /api/tax/summary", s.handleTaxSummary)
	mux.HandleFunc("POST /api/tax/invoice", s.handleTaxInvoice)
	mux.HandleFunc("GET /api/tax/year", s.handleTaxYear)
	mux.HandleFunc("GET /api/tax/rates", s.handleTaxRates)

	mux.HandleFunc("GET /api/refdata/categories", s.handleCategories)
	mux.HandleFunc("GET /api/refdata/quick-expenses", s.handleQuickExpenses)
	mux.HandleFunc("GET /api/refdata/prices", s.handlePrices)
	mux.HandleFunc("GET /api/refdata/currencies", s.handleCurrencies)
	mux.HandleFunc("POST /api/currency/convert", s.handleConvertCurrency)
	mux.HandleFunc("GET /api/settings/currency", s.handleGetCurrencySettings)
	mux.HandleFunc("PUT /api/settings/currency", s.handleSaveCurrencySettings)

	mux.HandleFunc("GET /api/backup", s.handleBackupExport)
	mux.HandleFunc("POST /api/backup/restore", s.handleBackupRestore)
	mux.HandleFunc("GET /api/backup/summary", s.handleBackupSummary)
	mux.HandleFunc("GET /api/backup/stats", s.handleStorageStats)
	mux.HandleFunc("DELETE /api/data", s.handleClearAll)

	mux.HandleFunc("GET /api/export/csv/{collection}", s.handleExportCSV)
	mux.HandleFunc("GET /api/export/excel", s.handleExportExcel)
	mux.HandleFunc("GET /api/export/summary", s.handleExportSummary)
	mux.HandleFunc("GET /api/export/xlsx", s.handleExportXLSX)

	mux.HandleFunc("GET /api/metrics", s.handleMetrics)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errRouteNotFound, "route")
	})
	return mux
}

// limitWrites applies the rate limit to requests that change data.
func (s *Server) limitWrites(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(s.detector.ExtractClientIP, func(w http.ResponseWriter, r *http.Request) {
		log.FromContext(r.Context()).WarnContext(r.Context(), "Rate limit exceeded",
			log.FieldClientIP, s.detector.ExtractClientIP(r),
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path)
		TooManyRequestsError().Write(w)
	})(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			limited.ServeHTTP(w, r)
		}
	})
}

// Shutdown stops the limiter and drains the HTTP server. Safe to call twice.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady pings the backing store.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := kv.Ping(ctx, s.store); err != nil {
		log.FromContext(r.Context()).WarnContext(r.Context(), "Readiness check failed", log.FieldError, err.Error())
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
