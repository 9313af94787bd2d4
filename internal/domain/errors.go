package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound возвращается, если записи нет или она чужая.
var ErrNotFound = errors.New("запись не найдена")

// ErrUnauthenticated возвращается при отсутствии пользователя в запросе.
var ErrUnauthenticated = errors.New("пользователь не аутентифицирован")

// ErrEmptyActivity возвращается при пустом тексте записи.
var ErrEmptyActivity = errors.New("текст записи пуст")

// ErrCompleterNotConfigured означает, что генеративный бэкенд не настроен.
// Отличается от сетевых сбоев: это обнаруживаемая ошибка конфигурации.
var ErrCompleterNotConfigured = errors.New("генеративный бэкенд не настроен")

// RateLimitError — отказ лимитера. Не фатален: несёт информацию
// об оставшемся ожидании или исчерпанной квоте.
type RateLimitError struct {
	Decision Decision
}

func (e *RateLimitError) Error() string {
	if e.Decision.RetryAfterSeconds > 0 {
		return fmt.Sprintf("лимитер: повторите через %d с", e.Decision.RetryAfterSeconds)
	}
	return "лимитер: дневная квота исчерпана"
}
