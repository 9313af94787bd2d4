package domain

import "time"

// Activity описывает одну запись журнала работ.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Time      time.Time `json:"time"`
	Text      string    `json:"text"`
	Week      int       `json:"week"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeekEntry объединяет записи одной ISO-недели. Это вычисляемое
// представление поверх журнала: ключ (Week, Year) выводится одним
// совмещённым ISO-вычислением, а не годом из календарной даты.
type WeekEntry struct {
	Week    int        `json:"week"`
	Year    int        `json:"year"`
	Entries []Activity `json:"entries"`
}

// DayBucket группирует записи недели по локальной календарной дате.
type DayBucket struct {
	Key     string     `json:"date"`
	DayName string     `json:"day_name"`
	Entries []Activity `json:"entries"`
}

// SummaryResult содержит промпт и результат генерации. Промпт
// возвращается и при ошибке, чтобы его можно было применить вручную.
type SummaryResult struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// Decision — вердикт лимитера по одной попытке генерации.
type Decision struct {
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
	RemainingToday    int    `json:"remaining_today"`
}

// GovernorState — персистентное состояние лимитера одного пользователя.
type GovernorState struct {
	LastRequestAt time.Time
	CountDate     string
	Count         int
}
