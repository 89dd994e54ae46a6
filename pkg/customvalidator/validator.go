// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations "собирает" все наши кастомные правила валидации
// и регистрирует их в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("not_blank", isNotBlank); err != nil {
		return err
	}

	return nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
