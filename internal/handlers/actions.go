package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/skip2/go-qrcode"
)

type openRequest struct {
	URL string `json:"url"`
}

type eventRequest struct {
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
}

// HandleOpenURL simulates the OS opening the app with a URL.
func (h *Handler) HandleOpenURL(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		h.badRequest(w, "body must be {\"url\": \"...\"}")
		return
	}

	n := h.links.Open(req.URL)
	h.logger.Info("open url simulated", "url", req.URL, "listeners", n)
	h.writeJSON(w, http.StatusOK, map[string]int{"listeners": n})
}

func (h *Handler) HandleReportEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.badRequest(w, "body must be {\"name\": \"...\", \"attributes\": {...}}")
		return
	}

	if err := h.app.ReportEvent(req.Name, req.Attributes); err != nil {
		h.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleQR renders ?url as a PNG QR code so a deep link can be opened on a
// real device.
func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		h.badRequest(w, "url is required")
		return
	}

	png, err := qrcode.Encode(url, qrcode.High, 256)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) HandleIdentifiers(w http.ResponseWriter, r *http.Request) {
	if h.ids == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{})
		return
	}

	values, err := h.identities.Get("identifiers", func() (map[string]string, error) {
		p, err := h.ids.Identifiers()
		if err != nil {
			return nil, err
		}
		return p.Values(), nil
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, values)
}

type libraryInfo struct {
	Version  string `json:"version"`
	APILevel int    `json:"apiLevel"`
}

// HandleLibrary reports the SDK version the bridge claims to wrap.
func (h *Handler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	info, err := h.library.Get("library", func() (libraryInfo, error) {
		version, err := h.app.GetLibraryVersion()
		if err != nil {
			return libraryInfo{}, err
		}
		level, err := h.app.GetLibraryAPILevel()
		if err != nil {
			return libraryInfo{}, err
		}
		return libraryInfo{Version: version, APILevel: level}, nil
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}
