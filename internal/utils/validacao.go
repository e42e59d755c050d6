package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidarStruct aplica as tags `validate` do DTO e devolve um único erro
// com todas as mensagens agregadas, no formato que os handlers repassam
// no campo error da resposta 400.
func ValidarStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errosValidacao validator.ValidationErrors
	if !errors.As(err, &errosValidacao) {
		return err
	}

	mensagens := make([]string, 0, len(errosValidacao))
	for _, e := range errosValidacao {
		mensagens = append(mensagens, mensagemDoCampo(e))
	}
	return errors.New(strings.Join(mensagens, "; "))
}

func mensagemDoCampo(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("campo '%s' é obrigatório", e.Field())
	case "min":
		return fmt.Sprintf("campo '%s' deve ter pelo menos %s caracteres", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("campo '%s' deve ser maior que %s", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("campo '%s' deve ser um email válido", e.Field())
	case "oneof":
		return fmt.Sprintf("campo '%s' deve ser um de: %s", e.Field(), e.Param())
	case "datetime":
		return fmt.Sprintf("campo '%s' deve estar no formato %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("campo '%s' falhou na regra '%s'", e.Field(), e.Tag())
	}
}
