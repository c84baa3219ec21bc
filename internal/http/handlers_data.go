package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"buildledger/internal/backup"
	"buildledger/internal/core"
	"buildledger/internal/export"
	"buildledger/internal/kv"
	"buildledger/internal/log"
)

// writeDownload sends body as an attachment named filename.
func writeDownload(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Backup

func (s *Server) handleBackupExport(w http.ResponseWriter, r *http.Request) {
	d, err := s.backup.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	body, err := backup.ExportJSON(d)
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "application/json", backup.Filename(d.CreatedAt), body)
}

// handleBackupRestore replaces all data with the uploaded bundle. Nothing is
// written unless the whole bundle validates.
func (s *Server) handleBackupRestore(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r, maxBackupBytes)
	if err != nil {
		s.writeError(w, r, err, log.OpRestore)
		return
	}
	d, err := backup.ImportJSON(raw)
	if err != nil {
		s.writeError(w, r, err, log.OpRestore)
		return
	}
	if err := s.backup.Restore(r.Context(), d); err != nil {
		s.writeError(w, r, err, log.OpRestore)
		return
	}
	log.FromContext(r.Context()).InfoContext(r.Context(), "Backup restored",
		"transactions", len(d.Transactions),
		"workers", len(d.Workers),
		"created_at", d.CreatedAt)
	writeJSON(w, http.StatusOK, backup.Summarize(d))
}

func (s *Server) handleBackupSummary(w http.ResponseWriter, r *http.Request) {
	d, err := s.backup.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, backup.Summarize(d))
}

func (s *Server) handleStorageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.backup.StorageStats(r.Context())
	if err != nil {
		s.writeError(w, r, err, log.OpRead)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		backup.StorageStats
		FormattedSize string `json:"formattedSize"`
	}{stats, backup.FormatBytes(int64(stats.TotalSize))})
}

// handleClearAll requires ?confirm=yes.
func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "yes" {
		BadRequestError("add ?confirm=yes to delete all data").Write(w)
		return
	}
	if err := s.backup.ClearAll(r.Context()); err != nil {
		s.writeError(w, r, err, log.OpDelete)
		return
	}
	log.FromContext(r.Context()).WarnContext(r.Context(), "All data cleared")
	noContent(w)
}

// Export

func (s *Server) exportData(w http.ResponseWriter, r *http.Request) (*backup.Data, bool) {
	d, err := s.backup.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return nil, false
	}
	return d, true
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	d, ok := s.exportData(w, r)
	if !ok {
		return
	}
	bundle := export.All(d)
	docs := map[string]string{
		"transactions": bundle.Transactions,
		"labor":        bundle.LaborPayments,
		"workers":      bundle.Workers,
		"invoices":     bundle.Invoices,
	}
	collection := r.PathValue("collection")
	doc, found := docs[collection]
	if !found {
		s.writeError(w, r, fmt.Errorf("export %q: %w", collection, errRouteNotFound), log.OpExport)
		return
	}
	writeDownload(w, "text/csv; charset=utf-8", collection+"-"+d.CreatedAt.Format("2006-01-02")+".csv", []byte(doc))
}

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	d, ok := s.exportData(w, r)
	if !ok {
		return
	}
	doc, err := export.CompleteReport(d, s.now())
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "application/vnd.ms-excel", "report-"+d.CreatedAt.Format("2006-01-02")+".xls", []byte(doc))
}

func (s *Server) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	period, err := ParsePeriod(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	txs := s.repo.ListTransactions(r.Context())
	doc, err := export.FinancialSummary(core.FilterByPeriod(txs, period, s.now()), string(period))
	if err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "application/vnd.ms-excel", "summary-"+string(period)+".xls", []byte(doc))
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := s.exportData(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.Workbook(d, &buf); err != nil {
		s.writeError(w, r, err, log.OpExport)
		return
	}
	writeDownload(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"buildledger-"+d.CreatedAt.Format("2006-01-02")+".xlsx", buf.Bytes())
}

// handleMetrics reports middleware counters and, when caching, the cache stats.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"requests":  s.tracer.GetMetrics(),
		"rateLimit": s.limiter.GetMetrics(),
		"security":  s.detector.GetMetrics(),
	}
	if cached, ok := s.store.(*kv.Cached); ok {
		m["cache"] = cached.Stats()
	}
	writeJSON(w, http.StatusOK, m)
}
