package summary

import (
	"strings"
	"testing"
	"time"

	"worklog-api/internal/domain"
)

func entry(at time.Time, text string) domain.Activity {
	return domain.Activity{UserID: "u1", Time: at, Text: text}
}

func TestDayPromptEmpty(t *testing.T) {
	got := DayPrompt(nil, "Monday, January 6, 2025")
	if got != EmptyDayMessage {
		t.Fatalf("ожидали заглушку пустого дня, получили %q", got)
	}
	if got == "" {
		t.Fatalf("заглушка не должна быть пустой строкой")
	}
}

func TestDayPromptRendersEntries(t *testing.T) {
	morning := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	prompt := DayPrompt([]domain.Activity{
		entry(morning, "attended the stand-up meeting"),
		entry(morning.Add(2*time.Hour), "reviewed pull requests"),
	}, "")

	if !strings.Contains(prompt, "## Monday, January 6, 2025") {
		t.Fatalf("промпт должен содержать заголовок дня:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- 9:30 AM: attended the stand-up meeting") {
		t.Fatalf("промпт должен содержать строку записи")
	}
	if !strings.Contains(prompt, "- 11:30 AM: reviewed pull requests") {
		t.Fatalf("промпт должен содержать вторую запись")
	}
	if !strings.Contains(prompt, "under 200 words") {
		t.Fatalf("дневной лимит слов должен быть 200")
	}
	if !strings.Contains(prompt, "```markdown") {
		t.Fatalf("пример должен быть обёрнут в markdown-блок")
	}
}

func TestDayPromptKeepsMarkdownVerbatim(t *testing.T) {
	at := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	prompt := DayPrompt([]domain.Activity{entry(at, "fixed *bold* and `code` in [docs](x)")}, "")
	if !strings.Contains(prompt, "fixed *bold* and `code` in [docs](x)") {
		t.Fatalf("markdown-символы должны проходить без экранирования")
	}
}

func TestWeekPromptEmpty(t *testing.T) {
	if got := WeekPrompt(nil); got != EmptyWeekMessage {
		t.Fatalf("ожидали заглушку пустой недели, получили %q", got)
	}
	if got := WeekPrompt([]domain.DayBucket{{Key: "2025-01-06", DayName: "Monday, January 6"}}); got != EmptyWeekMessage {
		t.Fatalf("неделя без записей тоже пустая, получили %q", got)
	}
}

func TestWeekPromptDaySubheaders(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	days := []domain.DayBucket{
		{Key: "2025-01-06", DayName: "Monday, January 6", Entries: []domain.Activity{entry(monday, "standup")}},
		{Key: "2025-01-07", DayName: "Tuesday, January 7", Entries: []domain.Activity{entry(monday.AddDate(0, 0, 1), "code review")}},
	}
	prompt := WeekPrompt(days)

	if !strings.Contains(prompt, "### Monday, January 6\n") {
		t.Fatalf("каждый день должен получить свой подзаголовок")
	}
	if !strings.Contains(prompt, "### Tuesday, January 7\n") {
		t.Fatalf("вторник должен получить свой подзаголовок")
	}
	if !strings.Contains(prompt, "Weekly Summary") {
		t.Fatalf("инструкции должны требовать недельное резюме")
	}
	if !strings.Contains(prompt, "under 400 words") {
		t.Fatalf("недельный лимит слов должен быть 400")
	}
	if strings.Index(prompt, "### Monday, January 6") > strings.Index(prompt, "### Tuesday, January 7") {
		t.Fatalf("дни должны идти в порядке корзин")
	}
}

func TestWeekPromptDeterministic(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	days := []domain.DayBucket{
		{Key: "2025-01-06", DayName: "Monday, January 6", Entries: []domain.Activity{
			entry(monday, "standup"),
			entry(monday.Add(time.Hour), "wrote migration"),
		}},
	}
	first := WeekPrompt(days)
	second := WeekPrompt(days)
	if first != second {
		t.Fatalf("одинаковый вход должен давать байт-в-байт одинаковый промпт")
	}
}
