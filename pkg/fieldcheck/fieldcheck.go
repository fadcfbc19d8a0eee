package fieldcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Resultado is the outcome of validating a form: exactly one of the two
// messages is non-empty.
type Resultado struct {
	MensajeError string
	MensajeExito string
}

// OK reports whether validation passed.
func (r Resultado) OK() bool {
	return r.MensajeError == ""
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validar inspects a form struct's `validate` tags and aggregates every
// failing field into a single human-readable message, mirroring the
// shared field validation helper the screens all call before submitting.
func Validar(form any) Resultado {
	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Resultado{MensajeError: fmt.Sprintf("Formulario inválido: %v", err)}
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describe(fe))
		}
		return Resultado{MensajeError: "Revisa el formulario: " + strings.Join(msgs, "; ")}
	}
	return Resultado{MensajeExito: "Campos validados correctamente"}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", fe.Field())
	case "len":
		return fmt.Sprintf("el campo %s debe tener %s caracteres", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s no debe exceder %s caracteres", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("el campo %s debe ser numérico", fe.Field())
	default:
		return fmt.Sprintf("el campo %s no es válido (%s)", fe.Field(), fe.Tag())
	}
}
