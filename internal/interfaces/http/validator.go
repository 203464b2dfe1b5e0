package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateBody valida el DTO con sus tags y devuelve un mensaje legible con
// los campos rechazados, o "" si pasa.
func validateBody(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "entrada inválida"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}
