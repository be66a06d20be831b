package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда запись по идентификатору отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput возвращается при невалидных данных запроса.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEventNotOpen возвращается при отклике на неодобренное или несуществующее событие.
	ErrEventNotOpen = errors.New("event not found or not approved")
)

// ValidationError описывает невалидное поле. errors.Is(err, ErrInvalidInput) == true.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid возвращает ValidationError для поля.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StringValue возвращает значение или пустую строку для nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
