package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bonus-reconciliation/internal/domain"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string   `json:"error"`
	Dataset string   `json:"dataset,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// writeError writes a JSON error body with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSONStatus(w, status, errorResponse{Error: message})
}

// writeAnalysisError maps an analyzer failure to a response. Schema problems
// are the client's to fix and carry the missing column list.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	var schemaErr *domain.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		s.writeJSONStatus(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   schemaErr.Error(),
			Dataset: schemaErr.Dataset,
			Missing: schemaErr.Missing,
		})
	case errors.Is(err, domain.ErrUnknownMode):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		s.writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		s.logger.Error("analysis failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}

// writeJSON encodes v as JSON and writes it to w.
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	s.writeJSONStatus(w, http.StatusOK, v)
}

func (s *Server) writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		s.logger.Warn("json encode error", zap.Error(err))
	}
}
