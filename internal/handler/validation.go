package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/bagdasarian/transfer-market/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator возвращает валидатор, который называет поля по json-тегам
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate читает JSON-тело запроса в dst и проверяет теги validate
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("Invalid request body", err.Error())
	}

	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return toValidationError(validationErrors)
		}
		return err
	}

	return nil
}

func toValidationError(errs validator.ValidationErrors) error {
	title := "Missing fields"
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Tag() != "required" {
			title = "Invalid fields"
		}
		fields = append(fields, fieldPath(fe.Namespace()))
	}

	return domain.NewValidationError(title, "Check fields: "+strings.Join(fields, ", "))
}

// fieldPath отрезает имя корневой структуры: "SignupRequest.user.email" -> "user.email"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// pathID разбирает числовой идентификатор из шаблона маршрута
func pathID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("Invalid identifier", raw)
	}
	return id, nil
}
