//go:build !(js && wasm)

// Package native provides the default Platform implementation: a
// regular OS process with real filesystem access and a real terminal.
package native

import "github.com/OzRAGEHarm/Zekken/pkg/platform"

type nativePlatform struct{}

func (nativePlatform) Name() string        { return "native" }
func (nativePlatform) HasFilesystem() bool { return true }
func (nativePlatform) SupportsColor() bool { return true }

func init() {
	platform.Current = nativePlatform{}
}
