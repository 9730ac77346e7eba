package clinic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound se devuelve cuando el id no resuelve a una fila existente.
	ErrNotFound = errors.New("not found")
	// ErrMissingParent: el store rechazó una fila cuyo padre no existe.
	ErrMissingParent = errors.New("referenced row does not exist")
)

// MissingParent convierte ErrMissingParent en un error de validación sobre field.
// Cubre el caso en que el padre se borra entre la validación y la escritura.
func MissingParent(err error, field string) error {
	if errors.Is(err, ErrMissingParent) {
		return &ValidationError{Fields: FieldErrors{{Field: field, Message: "does not exist"}}}
	}
	return err
}

// FieldError es un mensaje asociado a un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors acumula errores por campo, en orden de aparición.
// El primer mensaje de cada campo gana (una coerción fallida no se pisa con "required").
type FieldErrors []FieldError

func (fe *FieldErrors) Add(field, message string) {
	if fe.Has(field) {
		return
	}
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

func (fe *FieldErrors) Merge(other FieldErrors) {
	for _, e := range other {
		fe.Add(e.Field, e.Message)
	}
}

func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Map devuelve field -> message (útil para respuestas JSON).
func (fe FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Field] = e.Message
	}
	return out
}

// Messages devuelve los mensajes completos ("name can't be blank").
func (fe FieldErrors) Messages() []string {
	out := make([]string, 0, len(fe))
	for _, e := range fe {
		out = append(out, e.Field+" "+e.Message)
	}
	return out
}

// ValidationError es el resultado no fatal de un create/update rechazado.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Messages(), ", ")
}

// StorageError envuelve fallas del store (conectividad, FK en carrera, etc).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// WrapStorage deja pasar nil, NotFound y errores ya tipados; el resto se envuelve en StorageError.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// Outcome clasifica el resultado de una operación para métricas y logs.
func Outcome(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
