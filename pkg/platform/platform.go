// Package platform abstracts the handful of capabilities that differ
// between a native Zekken build and a WebAssembly embedding (spec.md
// §4.1, §6's "Embedded interface"): filesystem access and color-capable
// terminal output. Nothing in this module reads Current: the fs library
// is split by build tag (fs_native.go/fs_wasm.go), and cmd/zekken only
// blank-imports pkg/platform/native so that its init() sets Current.
package platform

// Platform describes what the host environment actually offers.
type Platform interface {
	// Name identifies the platform for diagnostics (e.g. "native", "wasm").
	Name() string
	// HasFilesystem reports whether fs library calls may touch a real
	// filesystem. false on WebAssembly (spec.md §4.1).
	HasFilesystem() bool
	// SupportsColor reports whether ANSI escapes are meaningful on this
	// platform's output sink, independent of NO_COLOR/TERM (those are
	// still consulted by internal/procenv on top of this).
	SupportsColor() bool
}

// fallback is used until an init() in pkg/platform/native or
// pkg/platform/wasm overrides Current; cmd/zekken blank-imports
// whichever one matches its build target.
type fallback struct{}

func (fallback) Name() string        { return "native" }
func (fallback) HasFilesystem() bool { return true }
func (fallback) SupportsColor() bool { return true }

// Current is the active Platform. A bare import of this package alone
// behaves like native; importing pkg/platform/wasm switches it over.
var Current Platform = fallback{}
