// Package metrica is a typed facade over a native analytics SDK.
//
// The package performs no analytics itself. Every call is shaped into the
// bridge's wire form and forwarded to the NativeBridge supplied by the host
// platform; errors raised by the bridge come back unmodified.
//
// An *AppMetrica handle owns the two pieces of state the facade keeps: the
// activation flag, which makes Activate effective at most once, and the
// reporter cache, which hands out exactly one *Reporter per API key.
package metrica

import (
	"context"
	"log/slog"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/singleflight"

	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/models"
)

// IdentifierStore persists identifiers returned by startup params requests.
type IdentifierStore interface {
	SaveStartupParams(p models.StartupParams) error
}

type AppMetrica struct {
	native    bridge.NativeBridge
	reporterB bridge.ReporterBridge
	linker    linking.Linker
	store     IdentifierStore
	logger    *slog.Logger
	ctx       context.Context

	mu        sync.Mutex
	activated bool

	reporters *xsync.Map[string, *Reporter]
	sfg       singleflight.Group
}

type Option func(*AppMetrica)

func WithLogger(l *slog.Logger) Option {
	return func(m *AppMetrica) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithLinker sets the host linking facility used for app-open tracking.
func WithLinker(l Linker) Option {
	return func(m *AppMetrica) {
		if l != nil {
			m.linker = l
		}
	}
}

func WithReporterBridge(r ReporterBridge) Option {
	return func(m *AppMetrica) {
		m.reporterB = r
	}
}

func WithIdentifierStore(s IdentifierStore) Option {
	return func(m *AppMetrica) {
		m.store = s
	}
}

// WithContext bounds background work started by the facade, which is only
// the initial launch URL read.
func WithContext(ctx context.Context) Option {
	return func(m *AppMetrica) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New wraps native. A nil native bridge yields a *LinkError.
func New(native NativeBridge, opts ...Option) (*AppMetrica, error) {
	if native == nil {
		return nil, &bridge.LinkError{}
	}

	m := &AppMetrica{
		native:    native,
		linker:    linking.None{},
		logger:    slog.New(slog.DiscardHandler),
		ctx:       context.Background(),
		reporters: xsync.NewMap[string, *Reporter](),
	}
	if r, ok := native.(ReporterBridge); ok {
		m.reporterB = r
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// FromRegistry builds a facade over the bridges registered with the bridge
// package, failing with a *LinkError when native code never registered one.
func FromRegistry(opts ...Option) (*AppMetrica, error) {
	native, reporters, err := bridge.Resolve()
	if err != nil {
		return nil, err
	}
	if reporters != nil {
		opts = append([]Option{WithReporterBridge(reporters)}, opts...)
	}
	return New(native, opts...)
}

// Activated reports whether Activate has succeeded on this handle.
func (m *AppMetrica) Activated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activated
}
