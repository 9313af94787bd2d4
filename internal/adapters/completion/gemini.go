package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"worklog-api/internal/domain"
	"worklog-api/internal/infra/gemini"
)

const defaultModel = "gemini-2.5-flash"

type generateClient interface {
	GenerateContent(ctx context.Context, model string, req gemini.GenerateContentRequest) (gemini.GenerateContentResponse, error)
}

// Gemini реализует domain.Completer поверх Gemini API.
type Gemini struct {
	client  generateClient
	model   string
	timeout time.Duration
}

var _ domain.Completer = (*Gemini)(nil)

// NewGemini создаёт адаптер генерации.
func NewGemini(client generateClient, model string, timeout time.Duration) *Gemini {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Gemini{client: client, model: model, timeout: timeout}
}

// Complete отправляет промпт модели и возвращает текст ответа.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.GenerateContent(ctx, g.model, gemini.GenerateContentRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		if errors.Is(err, gemini.ErrAPIKeyMissing) {
			return "", fmt.Errorf("%w: %w", domain.ErrCompleterNotConfigured, err)
		}
		return "", fmt.Errorf("генерация ответа: %w", err)
	}

	var parts []string
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
	}
	if len(parts) == 0 {
		return "", errors.New("генерация ответа: пустой ответ модели")
	}
	return strings.Join(parts, ""), nil
}
