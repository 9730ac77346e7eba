// Package web tiene los helpers HTTP compartidos por los handlers de cada módulo.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
)

const maxBodyBytes = 1 << 20

var (
	ErrInvalidBody = errors.New("invalid body")
)

type errorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse es el cuerpo de un 422.
type ValidationResponse struct {
	Error    string            `json:"error"`
	Fields   map[string]string `json:"fields"`
	Messages []string          `json:"messages"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorResponse{Error: msg})
}

// WriteError traduce errores de dominio a status HTTP.
// Lo inesperado se loguea y se responde con un mensaje genérico.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var ve *clinic.ValidationError
	switch {
	case errors.As(err, &ve):
		WriteJSON(w, http.StatusUnprocessableEntity, ValidationResponse{
			Error:    "validation failed",
			Fields:   ve.Fields.Map(),
			Messages: ve.Fields.Messages(),
		})
	case errors.Is(err, clinic.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrInvalidBody):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	default:
		if log != nil {
			log.Error("unhandled error", map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"error":  err,
			})
		}
		WriteMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// DecodeInput arma un clinic.Input desde JSON (objeto plano) o desde un form.
// Números y booleanos JSON se pasan a string; null equivale a "".
func DecodeInput(w http.ResponseWriter, r *http.Request) (clinic.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r)
	default:
		return decodeJSON(r.Body)
	}
}

func decodeForm(r *http.Request) (clinic.Input, error) {
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	in := clinic.Input{}
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			in[k] = vs[0]
		}
	}
	return in, nil
}

func decodeJSON(body io.Reader) (clinic.Input, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return clinic.Input{}, nil
		}
		return nil, fmt.Errorf("%w: invalid json", ErrInvalidBody)
	}

	in := make(clinic.Input, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			in[k] = ""
		case string:
			in[k] = val
		case json.Number:
			in[k] = val.String()
		case bool:
			in[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: field %q must be a scalar", ErrInvalidBody, k)
		}
	}
	return in, nil
}

// QueryBool: "1", "true", "yes" (sin importar mayúsculas).
func QueryBool(r *http.Request, key string) bool {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// ListOptions lee order_by y with_relations del query string.
func ListOptions(r *http.Request) clinic.ListOptions {
	return clinic.ListOptions{
		OrderBy:       r.URL.Query().Get("order_by"),
		WithRelations: QueryBool(r, "with_relations"),
	}
}
