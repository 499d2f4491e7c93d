package api

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRegexp допускает необязательный + и 7-15 цифр.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func validatePhone(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return phoneRegexp.MatchString(str)
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}

// FieldError один элемент списка ошибок валидации в формате {field, message}.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validationMessages = map[string]string{
	"Name":        "Name is required",
	"Email":       "Invalid email address",
	"Password":    "Password must be at least 6 characters long",
	"DateOfBirth": "Date of birth must be a valid date",
	"PhoneNumber": "Invalid phone number",
	"Username":    "Username is required",
}

// fieldErrors преобразует ошибки биндинга в структурированный список по полям.
func fieldErrors(valErrs validator.ValidationErrors) []FieldError {
	errs := make([]FieldError, 0, len(valErrs))
	for _, fe := range valErrs {
		msg, ok := validationMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		errs = append(errs, FieldError{
			Field:   fieldName(fe.Field()),
			Message: msg,
		})
	}
	return errs
}

// fieldName переводит имя поля структуры в имя поля запроса (lowerCamelCase).
func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
