package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleCalls lists recorded calls with a sequence number above ?since.
func (h *Handler) HandleCalls(w http.ResponseWriter, r *http.Request) {
	var since uint64
	if v := r.URL.Query().Get("since"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.badRequest(w, "since must be a sequence number")
			return
		}
		since = n
	}

	calls := h.rec.Since(since)
	if calls == nil {
		calls = []bridge.Call{}
	}
	h.writeJSON(w, http.StatusOK, calls)
}

// HandleCallsWS streams every call recorded from now on.
func (h *Handler) HandleCallsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "err", err)
		return
	}

	client := ws.NewClient(conn)
	h.hub.Register(CallsTopic, client)
	go client.WritePump()

	client.ReadPump()
	h.hub.Unregister(CallsTopic, client)
}
