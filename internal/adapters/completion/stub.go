package completion

import (
	"context"

	"worklog-api/internal/domain"
)

// Stub возвращает промпт как есть. Позволяет гонять сервис
// локально без ключа API.
type Stub struct{}

var _ domain.Completer = Stub{}

func (Stub) Complete(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}
