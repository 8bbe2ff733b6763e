package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/apperrors"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Коды ошибок в ответах API
const (
	codeNotFound     = "not_found"
	codeInvalidInput = "invalid_input"
	codeStoreFailure = "store_failure"
	codeInternal     = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// handleError сопоставляет ошибку с кодом ответа.
// notFoundMessage отдается клиенту вместо текста ошибки хранилища.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFoundMessage)
	case errors.Is(err, apperrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	default:
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %s", apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// validator - тело запроса на создание записи
type validator interface {
	Validate() error
}

// createRecord декодирует и проверяет тело запроса, сохраняет построенную запись и возвращает ее
func (h *Handlers) createRecord(w http.ResponseWriter, r *http.Request, collection string, payload validator, record func() any) {
	if err := decodeJSON(r, payload); err != nil {
		h.handleError(w, r, err, "")
		return
	}
	if err := payload.Validate(); err != nil {
		h.handleError(w, r, err, "")
		return
	}

	doc := record()
	if err := h.repo.Create(r.Context(), collection, doc); err != nil {
		h.handleError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// listRecords отдает результат выборки или ошибку хранилища
func listRecords[T any](h *Handlers, w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	items, err := list(r.Context())
	if err != nil {
		h.handleError(w, r, err, "")
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing query parameter %s", apperrors.ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be a number", apperrors.ErrInvalidInput, name)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing query parameter %s", apperrors.ErrInvalidInput, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %s must be an integer", apperrors.ErrInvalidInput, name)
	}
	return v, nil
}
