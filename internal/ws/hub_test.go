package ws

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHubBroadcast(t *testing.T) {
	h := newTestHub()
	a := &Client{Send: make(chan []byte, 1)}
	b := &Client{Send: make(chan []byte, 1)}
	other := &Client{Send: make(chan []byte, 1)}

	h.Register("calls", a)
	h.Register("calls", b)
	h.Register("other", other)
	assert.Equal(t, 2, h.Count("calls"))

	h.Broadcast("calls", []byte("x"))
	assert.Equal(t, []byte("x"), <-a.Send)
	assert.Equal(t, []byte("x"), <-b.Send)
	assert.Len(t, other.Send, 0)
}

func TestHubDropsWhenFull(t *testing.T) {
	h := newTestHub()
	c := &Client{Send: make(chan []byte, 1)}
	h.Register("calls", c)

	h.Broadcast("calls", []byte("1"))
	h.Broadcast("calls", []byte("2"))
	assert.Equal(t, []byte("1"), <-c.Send)
	assert.Len(t, c.Send, 0)
}

func TestHubUnregister(t *testing.T) {
	h := newTestHub()
	c := &Client{Send: make(chan []byte, 1)}
	h.Register("calls", c)
	h.Unregister("calls", c)
	h.Unregister("calls", c)

	assert.Equal(t, 0, h.Count("calls"))
	_, ok := <-c.Send
	assert.False(t, ok)
}
