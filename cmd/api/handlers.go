package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
	httpinfra "worklog-api/internal/infra/http"
	"worklog-api/internal/usecase/activities"
	"worklog-api/internal/usecase/summary"
	"worklog-api/internal/usecase/weeks"
)

func addr(port int) string {
	return fmt.Sprintf(":%d", port)
}

type handlers struct {
	log        zerolog.Logger
	loc        *time.Location
	weeks      *weeks.Service
	activities *activities.Service
	summaries  *summary.Service
}

func (h *handlers) register(r chi.Router, jwtSecret string) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httpinfra.AuthMiddleware(jwtSecret))

		r.Post("/activities", h.addActivity)
		r.Put("/activities/{id}", h.updateActivity)
		r.Delete("/activities/{id}", h.deleteActivity)
		r.Get("/activities/today", h.todayActivities)

		r.Get("/weeks", h.listWeeks)
		r.Get("/weeks/{year}/{week}", h.getWeek)

		r.Post("/summaries/week", h.weekSummary)
		r.Post("/summaries/day", h.daySummary)
	})
}

type addActivityRequest struct {
	Text string    `json:"text"`
	Time time.Time `json:"time,omitempty"`
}

func (h *handlers) addActivity(w http.ResponseWriter, r *http.Request) {
	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	activity, err := h.activities.Add(r.Context(), httpinfra.UserID(r), req.Text, req.Time)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	httpinfra.WriteJSON(w, http.StatusCreated, activity)
}

type updateActivityRequest struct {
	Text string `json:"text"`
}

func (h *handlers) updateActivity(w http.ResponseWriter, r *http.Request) {
	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := h.activities.Update(r.Context(), httpinfra.UserID(r), chi.URLParam(r, "id"), req.Text); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) deleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.activities.Delete(r.Context(), httpinfra.UserID(r), chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type dayResponse struct {
	Date       string            `json:"date"`
	IsWorkday  bool              `json:"is_workday"`
	Activities []domain.Activity `json:"activities"`
}

// todayActivities отдаёт записи за локальную дату. Параметр date
// (YYYY-MM-DD) позволяет посмотреть любой день, по умолчанию сегодня.
func (h *handlers) todayActivities(w http.ResponseWriter, r *http.Request) {
	date := time.Now().In(h.loc)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}
	entries, err := h.weeks.TodayActivities(r.Context(), httpinfra.UserID(r), date)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	httpinfra.WriteJSON(w, http.StatusOK, dayResponse{
		Date:       calendar.DayKey(date),
		IsWorkday:  calendar.IsWorkday(date),
		Activities: entries,
	})
}

type weekSummaryItem struct {
	Week          int    `json:"week"`
	Year          int    `json:"year"`
	DateRange     string `json:"date_range"`
	ActivityCount int    `json:"activity_count"`
}

func (h *handlers) listWeeks(w http.ResponseWriter, r *http.Request) {
	entries, err := h.weeks.ListWeeksSorted(r.Context(), httpinfra.UserID(r))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	items := make([]weekSummaryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, weekSummaryItem{
			Week:          entry.Week,
			Year:          entry.Year,
			DateRange:     calendar.WeekDateRange(entry.Week, entry.Year, h.loc),
			ActivityCount: len(entry.Entries),
		})
	}
	httpinfra.WriteJSON(w, http.StatusOK, map[string]any{"weeks": items})
}

type weekResponse struct {
	Week      int                `json:"week"`
	Year      int                `json:"year"`
	DateRange string             `json:"date_range"`
	Days      []domain.DayBucket `json:"days"`
}

// getWeek отдаёт неделю, разложенную по дням. Неделя без записей — это
// валидный ответ с пустым списком дней, а не 404.
func (h *handlers) getWeek(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid year"))
		return
	}
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > 53 {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid week, expected 1..53"))
		return
	}
	entry, ok, err := h.weeks.GetWeek(r.Context(), httpinfra.UserID(r), week, year)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	resp := weekResponse{
		Week:      week,
		Year:      year,
		DateRange: calendar.WeekDateRange(week, year, h.loc),
		Days:      []domain.DayBucket{},
	}
	if ok {
		resp.Days = h.weeks.ByDay(entry)
	}
	httpinfra.WriteJSON(w, http.StatusOK, resp)
}

type weekSummaryRequest struct {
	Week int `json:"week"`
	Year int `json:"year"`
}

func (h *handlers) weekSummary(w http.ResponseWriter, r *http.Request) {
	var req weekSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Week < 1 || req.Week > 53 || req.Year == 0 {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("week and year are required"))
		return
	}
	result, err := h.summaries.GenerateWeekSummary(r.Context(), httpinfra.UserID(r), req.Week, req.Year)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	httpinfra.WriteJSON(w, http.StatusOK, result)
}

type daySummaryRequest struct {
	Date string `json:"date,omitempty"`
}

func (h *handlers) daySummary(w http.ResponseWriter, r *http.Request) {
	var req daySummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	date := time.Now().In(h.loc)
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
		if err != nil {
			httpinfra.WriteError(w, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}
	result, err := h.summaries.GenerateDaySummary(r.Context(), httpinfra.UserID(r), date)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	httpinfra.WriteJSON(w, http.StatusOK, result)
}

// writeDomainError переводит доменные ошибки в HTTP статусы.
func (h *handlers) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var rateErr *domain.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		httpinfra.WriteJSON(w, http.StatusTooManyRequests, rateErr.Decision)
	case errors.Is(err, domain.ErrUnauthenticated):
		httpinfra.WriteError(w, http.StatusUnauthorized, errors.New("unauthorized"))
	case errors.Is(err, domain.ErrNotFound):
		httpinfra.WriteError(w, http.StatusNotFound, errors.New("not found"))
	case errors.Is(err, domain.ErrEmptyActivity):
		httpinfra.WriteError(w, http.StatusBadRequest, errors.New("activity text is required"))
	default:
		h.log.Error().Err(err).Str("request_id", httpinfra.RequestID(r)).Msg("необработанная ошибка запроса")
		httpinfra.WriteError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
