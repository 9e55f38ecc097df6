package bridge

import (
	"errors"
	"runtime"
	"sync"
)

// ErrNotLinked matches every *LinkError.
var ErrNotLinked = errors.New("bridge: native module not linked")

// LinkError is returned when the native module was never registered, which
// means the host app was not rebuilt after installing native dependencies.
type LinkError struct{}

func (*LinkError) Error() string {
	return linkingMessage()
}

func (*LinkError) Is(target error) bool {
	return target == ErrNotLinked
}

func linkingMessage() string {
	msg := "The package 'metrica' doesn't seem to be linked. Make sure: \n\n"
	if runtime.GOOS == "ios" {
		msg += "- You have run 'pod install'\n"
	}
	return msg +
		"- You registered the native bridge before the first call\n" +
		"- You rebuilt the app after reinstalling native dependencies\n"
}

var (
	mu        sync.RWMutex
	native    NativeBridge
	reporters ReporterBridge
)

// Register is called once from native (Swift/Kotlin) before any other call.
// The reporter bridge may be nil when the host never uses reporters.
func Register(b NativeBridge, r ReporterBridge) {
	mu.Lock()
	defer mu.Unlock()
	native = b
	reporters = r
}

// Resolve returns the registered bridges, or a *LinkError if no native
// bridge was registered.
func Resolve() (NativeBridge, ReporterBridge, error) {
	mu.RLock()
	defer mu.RUnlock()
	if native == nil {
		return nil, nil, &LinkError{}
	}
	return native, reporters, nil
}

// Get returns the registered bridge. Panics with the linking message if
// Register was never called.
func Get() NativeBridge {
	b, _, err := Resolve()
	if err != nil {
		panic(err.Error())
	}
	return b
}

// Reset forgets the registered bridges.
func Reset() {
	Register(nil, nil)
}
