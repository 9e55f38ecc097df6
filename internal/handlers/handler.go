package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/cache"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/models"
	"github.com/metrica-go/metrica/internal/ws"
)

// CallsTopic is the hub topic recorded bridge calls are broadcast on.
const CallsTopic = "calls"

// Identifiers is the read side of the identifier store.
type Identifiers interface {
	Identifiers() (models.StartupParams, error)
}

type Handler struct {
	app    *metrica.AppMetrica
	rec    *bridge.Recorder
	links  *linking.Source
	ids    Identifiers
	hub    *ws.Hub
	logger *slog.Logger

	library    *cache.Stale[libraryInfo]
	identities *cache.Stale[map[string]string]
}

func New(
	app *metrica.AppMetrica,
	rec *bridge.Recorder,
	links *linking.Source,
	ids Identifiers,
	hub *ws.Hub,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		app:    app,
		rec:    rec,
		links:  links,
		ids:    ids,
		hub:    hub,
		logger: logger,

		library:    cache.NewStale[libraryInfo](cache.DefaultTTL),
		identities: cache.NewStale[map[string]string](cache.DefaultTTL),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", "err", err)
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("handler error", "path", r.URL.Path, "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
