package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
)

type contextKey string

const staffIDKey contextKey = "staffID"

const msgMissingStaffID = "identifiant du personnel manquant ou invalide"

// Auth проверяет заголовок X-Staff-ID и кладет ID сотрудника в контекст
// Используется на маршрутах дашборда (смена статуса, списки, сообщения)
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffIDStr := r.Header.Get("X-Staff-ID")
		if staffIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID извлекает ID сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
