package web

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/hlog"
)

// recoverer turns a handler panic into a 500 for that request only.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			writeStatus(w, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
