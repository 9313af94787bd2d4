package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"worklog-api/internal/domain"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// AuthMiddleware проверяет bearer-токен (HS256) и кладёт идентификатор
// пользователя из claim sub в контекст запроса. Без валидной сессии
// ни один обработчик ядра не выполняется.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, domain.ErrUnauthenticated)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, domain.ErrUnauthenticated)
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				WriteError(w, http.StatusUnauthorized, domain.ErrUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает идентификатор пользователя текущего запроса.
// Пустая строка означает, что запрос не прошёл аутентификацию.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
