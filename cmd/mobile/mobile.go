// Package mobile is the gomobile surface of metrica. Structured arguments
// cross the boundary as JSON strings; an empty string means absent.
package mobile

import (
	"context"
	"log/slog"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/metrica-go/metrica"
	"github.com/metrica-go/metrica/internal/bridge"
	"github.com/metrica-go/metrica/internal/linking"
	"github.com/metrica-go/metrica/internal/logger"
)

// Linker is implemented natively on top of the platform's URL handling.
type Linker interface {
	InitialURL() string
	Subscribe(l URLListener)
}

type URLListener interface {
	OnURL(url string)
}

// LogSink receives the binding's log lines, already formatted.
type LogSink interface {
	Log(level string, message string)
}

// binding is the facade over one native bridge together with the reporter
// wrappers handed out for it.
type binding struct {
	app       *metrica.AppMetrica
	native    bridge.NativeBridge
	reporters *xsync.Map[string, *Reporter]
}

var (
	mu      sync.Mutex
	current *binding
	links   linking.Linker = linking.None{}
)

var sink = &relay{}

// RegisterBridge must be called from native code before anything else.
// reporters and linker may be nil. Registering the same native bridge again,
// as happens when an Activity is recreated, keeps the activation state and
// the reporters; only a different bridge starts over.
func RegisterBridge(native bridge.NativeBridge, reporters bridge.ReporterBridge, linker Linker) {
	mu.Lock()
	defer mu.Unlock()

	bridge.Register(native, reporters)
	if linker != nil {
		links = nativeLinker{l: linker}
	} else {
		links = linking.None{}
	}
	if native != nil && current != nil && current.native != native {
		current = nil
	}
}

// SetLogSink routes log output to s; nil silences it.
func SetLogSink(s LogSink) {
	sink.set(s)
}

// instance returns the binding for the registered bridge, or a
// *bridge.LinkError when none is registered.
func instance() (*binding, error) {
	mu.Lock()
	defer mu.Unlock()

	native, reporters, err := bridge.Resolve()
	if err != nil {
		return nil, err
	}
	if current != nil && current.native == native {
		return current, nil
	}

	opts := []metrica.Option{
		metrica.WithLinker(links),
		metrica.WithLogger(slog.New(logger.NewSinkHandler(sink, slog.LevelDebug))),
	}
	if reporters != nil {
		opts = append(opts, metrica.WithReporterBridge(reporters))
	}
	m, err := metrica.New(native, opts...)
	if err != nil {
		return nil, err
	}
	current = &binding{
		app:       m,
		native:    native,
		reporters: xsync.NewMap[string, *Reporter](),
	}
	return current, nil
}

func with(fn func(m *metrica.AppMetrica) error) error {
	b, err := instance()
	if err != nil {
		return err
	}
	return fn(b.app)
}

type nativeLinker struct {
	l Linker
}

func (n nativeLinker) InitialURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return n.l.InitialURL(), nil
}

func (n nativeLinker) Subscribe(fn func(url string)) {
	n.l.Subscribe(urlFunc(fn))
}

type urlFunc func(string)

func (f urlFunc) OnURL(url string) { f(url) }

type relay struct {
	mu   sync.RWMutex
	sink LogSink
}

func (r *relay) set(s LogSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = s
}

func (r *relay) Log(level string, message string) {
	r.mu.RLock()
	s := r.sink
	r.mu.RUnlock()
	if s != nil {
		s.Log(level, message)
	}
}
