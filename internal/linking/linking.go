// Package linking models the host facility that knows which URL launched
// the app and which URLs open it afterwards.
package linking

import (
	"context"
	"sync"
)

// Linker is implemented by the host platform.
type Linker interface {
	// InitialURL returns the URL the app was launched with, or "" when it
	// was launched normally.
	InitialURL(ctx context.Context) (string, error)

	// Subscribe registers fn for every later open-URL event. Listeners are
	// never removed.
	Subscribe(fn func(url string))
}

// Source is an in-process Linker. The host pushes URLs into it with Open.
type Source struct {
	mu        sync.RWMutex
	initial   string
	listeners []func(url string)
}

var _ Linker = (*Source)(nil)

func NewSource(initialURL string) *Source {
	return &Source{initial: initialURL}
}

func (s *Source) InitialURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initial, nil
}

func (s *Source) Subscribe(fn func(url string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Open delivers url to every listener and returns how many received it.
func (s *Source) Open(url string) int {
	s.mu.RLock()
	listeners := make([]func(string), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(url)
	}
	return len(listeners)
}

// None is a Linker with no launch URL and no events.
type None struct{}

func (None) InitialURL(context.Context) (string, error) { return "", nil }
func (None) Subscribe(func(string))                     {}
