package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Spok95/techvault/internal/infra/excel"
	"github.com/Spok95/techvault/internal/infra/mockapi"
	"github.com/Spok95/techvault/internal/store"
	"github.com/Spok95/techvault/internal/validate"
)

type errorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// badRequest — ошибка разбора запроса (не валидация формы).
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	writeErrorBody(w, status, errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	})
}

func writeErrorBody(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr переводит ошибки слоёв в HTTP-ответ.
func writeErr(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr validate.Errors
		bad  badRequest
	)
	switch {
	case errors.As(err, &verr):
		writeErrorBody(w, http.StatusBadRequest, errorResponse{
			Error:     "validation failed",
			Code:      "VALIDATION",
			RequestID: requestIDFromContext(r.Context()),
			Fields:    verr,
		})
	case errors.As(err, &bad):
		writeError(w, r, bad.msg, "BAD_REQUEST", http.StatusBadRequest)
	case errors.Is(err, mockapi.ErrUnsupportedMethod), errors.Is(err, excel.ErrNoRows):
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, excel.ErrUnknownEntity):
		writeError(w, r, "not found", "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, mockapi.ErrSimulatedFailure):
		writeError(w, r, "An error occurred while processing your request", "UPSTREAM_FAILED", http.StatusServiceUnavailable)
	case errors.Is(err, store.ErrCorrupt):
		log.Error("corrupt collection", "err", err, "request_id", requestIDFromContext(r.Context()))
		writeError(w, r, "stored data is corrupt", "CORRUPT_DATA", http.StatusInternalServerError)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, "request canceled", "CANCELED", http.StatusServiceUnavailable)
	default:
		log.Error("request failed", "err", err, "request_id", requestIDFromContext(r.Context()))
		writeError(w, r, "internal error", "INTERNAL", http.StatusInternalServerError)
	}
}
