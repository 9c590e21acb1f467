package interp

import "sync"

// libraryFactory builds a fresh library object (an Object Value whose
// properties are native functions plus any constants) each time a
// `use` statement needs one. Factories are registered by
// internal/interp/stdlib's init() functions rather than imported
// directly, since stdlib depends on this package for the Value type
// and a direct import back would cycle.
type libraryFactory func() Value

var (
	libraryMu       sync.Mutex
	libraryRegistry = map[string]libraryFactory{}
)

// RegisterLibrary adds name to the registered-library table consulted
// by `use` (spec.md §4.5.5 point 1: "math, fs, os"). Called from each
// stdlib package's init().
func RegisterLibrary(name string, factory libraryFactory) {
	libraryMu.Lock()
	defer libraryMu.Unlock()
	libraryRegistry[name] = factory
}

func lookupLibrary(name string) (Value, bool) {
	libraryMu.Lock()
	factory, ok := libraryRegistry[name]
	libraryMu.Unlock()
	if !ok {
		return Value{}, false
	}
	return factory(), true
}
