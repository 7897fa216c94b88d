package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/bagdasarian/transfer-market/internal/logger"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Errors: []ErrorDetail{{
				Title:  domainErr.Message,
				Detail: domainErr.Detail,
			}},
		})
		return
	}

	logger.FromContext(r.Context(), h.logger).Error("request failed", zap.Error(err))

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Errors: []ErrorDetail{{Title: "Internal server error"}},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation, domain.CodeConflict, domain.CodeInvalidTransition:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated, domain.CodeForbidden:
		return http.StatusUnauthorized
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
