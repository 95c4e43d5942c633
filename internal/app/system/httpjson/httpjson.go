// internal/app/system/httpjson/httpjson.go
//
// Package httpjson writes API responses. Every error body uses the
// {"detail": ...} envelope so clients see one shape regardless of which
// layer rejected the request.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/apperr"
)

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes an error envelope with the given status and detail message.
func Detail(w http.ResponseWriter, status int, detail string) {
	Respond(w, status, map[string]string{"detail": detail})
}

// Error maps an error to an HTTP response. Typed apperr errors keep their
// kind and detail; store.ErrNotFound becomes 404; anything else is logged
// and reported as a 500 without leaking internals.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Detail(w, statusFor(ae.Kind), ae.Detail)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		Detail(w, http.StatusNotFound, "Recurso não encontrado")
		return
	}
	if logger != nil {
		logger.Error("internal error", zap.Error(err))
	}
	Detail(w, http.StatusInternalServerError, "Erro interno do servidor")
}

func statusFor(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Decode reads the request body into dst and rejects malformed JSON.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("Corpo da requisição inválido")
	}
	return nil
}
