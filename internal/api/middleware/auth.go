package middleware

import (
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
)

// AdminSessions проверка cookie администратора
type AdminSessions interface {
	IsAdmin(r *http.Request) bool
}

// AdminAuth пропускает запрос только с действующей сессией администратора
func AdminAuth(sessions AdminSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAdmin(r) {
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
