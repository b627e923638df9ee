package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"wbooks/internal/domain"
	"wbooks/internal/ports/input"
)

// Handler serves the API routes.
type Handler struct {
	greeter input.GreetingUseCase
}

func NewHandler(greeter input.GreetingUseCase) *Handler {
	return &Handler{greeter: greeter}
}

// Hello answers GET /api/hello/{name} with a plain-text greeting in the
// language picked from Accept-Language.
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	name, ok := pathParam(r, "name")
	if !ok || name == "" {
		notFound(w, r)
		return
	}

	greeting, err := h.greeter.Greet(r.Context(), r.Header.Get("Accept-Language"), name)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			notFound(w, r)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("greeting failed")
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Language", greeting.Locale)
	w.Header().Add("Vary", "Accept-Language")
	writeText(w, http.StatusOK, greeting.Text)
}

// pathParam returns the decoded value of a chi URL parameter. chi matches
// against RawPath when the request carries one, so the value may still be
// escaped.
func pathParam(r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, true
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return decoded, true
}
