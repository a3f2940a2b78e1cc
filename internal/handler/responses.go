package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool holds encode buffers so responses don't allocate one per request
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	ErrMsgInvalidRangeError  = "Invalid level range: start must be lower than end, both between 1 and 140"
	ErrMsgUnknownTierError   = "Unknown potion tier. Use Diamante, Ouro, Prata or Bronze"
	ErrMsgUnknownRecipeError = "Recipe not found"
	ErrMsgUnknownSlotError   = "Unknown equipment slot. Use Emblema, Capacete, Calça, Peito, Arma or Colar"
	ErrMsgUnknownTabError    = "Unknown tab. Use menu, exp, receitas or cristais"
	ErrMsgUnknownKeyError    = "Unknown name"
	ErrMsgInvalidInputError  = "Invalid input. Please check your values."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, ErrMsgInvalidRangeError
	case errors.Is(err, domain.ErrUnknownTier):
		return http.StatusBadRequest, ErrMsgUnknownTierError
	case errors.Is(err, domain.ErrUnknownRecipe):
		return http.StatusNotFound, ErrMsgUnknownRecipeError
	case errors.Is(err, domain.ErrUnknownSlot):
		return http.StatusBadRequest, ErrMsgUnknownSlotError
	case errors.Is(err, domain.ErrUnknownTab):
		return http.StatusBadRequest, ErrMsgUnknownTabError
	case errors.Is(err, domain.ErrUnknownKey):
		return http.StatusBadRequest, ErrMsgUnknownKeyError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
