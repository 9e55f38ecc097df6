package ws

import (
	"log/slog"
	"sync"
)

type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) Register(topic string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]struct{})
	}
	h.topics[topic][c] = struct{}{}
	h.logger.Debug("ws register",
		"topic", topic,
		"clients", len(h.topics[topic]),
	)
}

func (h *Hub) Unregister(topic string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic][c]; !ok {
		return
	}
	delete(h.topics[topic], c)
	close(c.Send)
	if len(h.topics[topic]) == 0 {
		delete(h.topics, topic)
	}
	h.logger.Debug("ws unregister", "topic", topic)
}

func (h *Hub) Count(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) Broadcast(topic string, data []byte) {
	if data == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for c := range h.topics[topic] {
		select {
		case c.Send <- data:
			sent++
		default:
			h.logger.Warn("ws dropped message", "topic", topic)
		}
	}

	h.logger.Debug("ws broadcast",
		"topic", topic,
		"recipients", sent,
	)
}
