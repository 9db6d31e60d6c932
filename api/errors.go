package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/sheet"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// writeError maps err to a status and an error code.
func writeError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		writeJSONError(w, http.StatusRequestEntityTooLarge, "file_too_large", err.Error())
	case errors.Is(err, sheet.ErrUnsupportedFormat):
		writeJSONError(w, http.StatusUnsupportedMediaType, "unsupported_format", err.Error())
	case errors.Is(err, sheet.ErrNoRows):
		writeJSONError(w, http.StatusUnprocessableEntity, "no_rows", err.Error())
	case errors.Is(err, fifo.ErrAmbiguousKeywords):
		writeJSONError(w, http.StatusBadRequest, "invalid_keywords", err.Error())
	case errors.Is(err, errMapping):
		writeJSONError(w, http.StatusUnprocessableEntity, "invalid_mapping", err.Error())
	case errors.Is(err, errRequest):
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, fifo.ErrInvariant):
		slog.Error("matching failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "lot matching failed")
	default:
		writeJSONError(w, http.StatusBadRequest, "invalid_file", err.Error())
	}
}

var (
	errRequest = errors.New("invalid request")
	errMapping = errors.New("invalid column mapping")
)
