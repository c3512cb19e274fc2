package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// usernameRe повторяет правило исходного API: буквы, цифры и .@+-_
var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

func init() {
	validate = validator.New()

	// имена полей в ошибках берутся из json-тегов
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
}

// Validate проверяет структуру по validate-тегам и возвращает
// ошибки по полям; nil — если всё в порядке.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "email":
		return "Некорректный адрес электронной почты."
	case "username":
		return "Имя пользователя содержит недопустимые символы."
	case "min":
		return "Значение слишком короткое."
	case "max":
		return "Значение слишком длинное."
	default:
		return "Недопустимое значение."
	}
}
