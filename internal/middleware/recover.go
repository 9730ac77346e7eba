package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/web"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover atrapa panics de los handlers, los loguea con stack y responde 500 JSON.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler se re-lanza, como hace net/http
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"error":      fmt.Errorf("%v", rec),
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Connection", "close")
				web.WriteMessage(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
