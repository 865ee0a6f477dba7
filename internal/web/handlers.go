package web

import (
	"errors"
	"fmt"
	"net/http"

	"bonus-reconciliation/internal/domain"
	"bonus-reconciliation/internal/export"
	"bonus-reconciliation/internal/gateway"
	"bonus-reconciliation/internal/render"

	"go.uber.org/zap"
)

type duplicatesResponse struct {
	Report  *domain.DuplicateReport `json:"report"`
	Chart   []render.Bar            `json:"chart"`
	Message string                  `json:"message"`
}

type comparisonResponse struct {
	Report  *domain.ComparisonReport `json:"report"`
	Message string                   `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// handleDuplicates checks the uploaded "file" for duplicated client ids.
func (s *Server) handleDuplicates(w http.ResponseWriter, r *http.Request) {
	if !s.parseUpload(w, r) {
		return
	}
	ds, err := readUpload(r, "file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.analyzer.AnalyzeDuplicates(r.Context(), ds)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	w.Header().Set("X-Report-ID", report.ReportID)
	if wantsCSV(r) {
		s.writeCSV(w, s.cfg.Export.DuplicatesFileName, report.Table())
		return
	}
	s.writeJSON(w, duplicatesResponse{
		Report:  report,
		Chart:   render.DuplicateBars(report),
		Message: render.DuplicatesMessage(report),
	})
}

// handleCompare compares the uploaded "file_a" and "file_b" in the mode
// given by the "mode" query parameter.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !s.parseUpload(w, r) {
		return
	}

	a, err := readUpload(r, "file_a")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := readUpload(r, "file_b")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.analyzer.CompareDatasets(r.Context(), mode, a, b)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	w.Header().Set("X-Report-ID", report.ReportID)
	if wantsCSV(r) {
		s.writeCSV(w, s.cfg.ComparisonFile(mode), report.Table())
		return
	}
	s.writeJSON(w, comparisonResponse{
		Report:  report,
		Message: render.ComparisonMessage(report),
	})
}

// parseUpload parses the multipart form within the configured size limit and
// writes the error response itself when it fails.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) bool {
	maxSize := s.cfg.Server.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return false
		}
		s.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return false
	}
	return true
}

func readUpload(r *http.Request, field string) (domain.Dataset, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("no file provided in %q", field)
	}
	defer file.Close()

	ds, err := gateway.ReadDataset(header.Filename, file)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("could not parse %q as CSV: %w", field, err)
	}
	return ds, nil
}

func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

func (s *Server) writeCSV(w http.ResponseWriter, filename string, t domain.Table) {
	data, err := export.ToDelimitedText(t)
	if err != nil {
		s.logger.Error("csv export failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("csv write failed", zap.Error(err))
	}
}
