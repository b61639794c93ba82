package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/JagtapGaurav/Matrimonial/internal/errors"
)

// SuccessEnvelope wraps every successful JSON response.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope wraps every failed JSON response.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// WriteSuccess writes a 200 envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

// WriteSuccessStatus writes an envelope with an explicit status code.
func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, SuccessEnvelope{Data: data})
}

// WriteError maps an error to its Kind's HTTP status and writes the envelope.
// Untyped errors become opaque internal errors so infra details never leak.
func WriteError(w http.ResponseWriter, log *slog.Logger, err error) {
	typed := apperrors.As(apperrors.Map(err))

	message := typed.Message()
	if typed.Kind() == apperrors.KindInternal {
		if log != nil {
			log.Error("request failed", "err", err)
		}
		message = "internal server error"
	}

	writeJSON(w, apperrors.HTTPStatus(typed.Kind()), ErrorEnvelope{
		Error: APIError{
			Code:    string(typed.Kind()),
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
