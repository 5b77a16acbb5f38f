package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/domain"
)

// ErrorResponse is the wire shape for every failure: a human-readable
// message, the offending field where applicable, and a taxonomy code so
// clients can branch without string-matching.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Code  string `json:"code"`
}

// WriteJSON writes a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError maps application errors to HTTP responses. Internal error
// detail is only exposed outside production.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger, exposeDetail bool) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)

	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		if !exposeDetail {
			message = "an internal error occurred"
		}
	}

	WriteJSON(w, statusCode, ErrorResponse{
		Error: message,
		Field: domain.FieldOf(err),
		Code:  errorCode,
	})
}
