package clinic

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// EmailRX acepta local@dominio.tld; el último label del dominio es solo alfabético.
var EmailRX = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Validatable lo implementan las cuatro entidades.
type Validatable interface {
	Validate() FieldErrors
}

func rules() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New()

		// Los errores se reportan con el nombre JSON del campo (client_id, date_time...).
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("ref", notBlank)
		_ = v.RegisterValidation("clientemail", clientEmail)

		engine = v
	})
	return engine
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// clientEmail es opcional: vacío es válido.
func clientEmail(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return EmailRX.MatchString(s)
}

// validateStruct corre las reglas declaradas en los tags y devuelve TODAS las violaciones.
func validateStruct(v any) FieldErrors {
	var out FieldErrors

	err := rules().Struct(v)
	if err == nil {
		return out
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out.Add(fe.Field(), ruleMessage(fe))
		}
		return out
	}

	out.Add("base", err.Error())
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "can't be blank"
	case "ref":
		return "must be selected"
	case "clientemail":
		return "is invalid"
	case "gte":
		if fe.Param() == "0" {
			return "must be zero or greater"
		}
		return "must be at least " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		if fe.Param() == "0" {
			return "must be greater than zero"
		}
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// Check combina errores de coerción con las reglas de la entidad.
// Devuelve *ValidationError si hay al menos una violación.
func Check(coercion FieldErrors, v Validatable) error {
	errs := append(FieldErrors{}, coercion...)
	errs.Merge(v.Validate())
	if errs.Empty() {
		return nil
	}
	return &ValidationError{Fields: errs}
}
