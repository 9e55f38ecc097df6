package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/metrica-go/metrica/internal/handlers"
)

func New(h *handlers.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)

	r.Get("/", h.HandleIndex)
	r.Get("/ws/calls", h.HandleCallsWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/calls", h.HandleCalls)
		r.Post("/open", h.HandleOpenURL)
		r.Post("/events", h.HandleReportEvent)
		r.Get("/qr", h.HandleQR)
		r.Get("/identifiers", h.HandleIdentifiers)
		r.Get("/library", h.HandleLibrary)
	})

	return r
}
