package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotehub/internal/domain/value"
	"quotehub/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Post("/quotes", handler(s.postV1Quotes))
		})

		// Vendor proxies consumed by the quote fetcher.
		r.Route("/api", func(r chi.Router) {
			r.Post("/turborrater/quote", handler(s.postVendorQuote(value.SourceTurboRater)))
			r.Post("/turborater/quote", handler(s.postVendorQuote(value.SourceTurboRater)))
			r.Post("/momentum/quote", handler(s.postVendorQuote(value.SourceMomentum)))
			r.Post("/gail/quote", handler(s.postVendorQuote(value.SourceGAIL)))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
