package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"wbooks/internal/ports/input"
)

// NewRouter binds the greeting route and the static catch-all.
//
//	GET /api/hello/{name}  localized greeting
//	GET /*                 file under staticDir
//
// HEAD is answered like GET. Other methods on these paths get 405.
func NewRouter(greeter input.GreetingUseCase, staticDir string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	}))
	r.Use(recoverer)
	r.Use(middleware.GetHead)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	h := NewHandler(greeter)
	r.Get("/api/hello/{name}", h.Hello)
	r.Get("/*", NewStaticHandler(staticDir).ServeHTTP)

	return r
}
