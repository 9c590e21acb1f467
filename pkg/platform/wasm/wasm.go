//go:build js && wasm

// Package wasm provides the Platform implementation for the
// WebAssembly embedding: no filesystem, and color escapes are
// meaningless since the embedder owns the actual display surface
// (spec.md §6's "Embedded interface").
package wasm

import "github.com/OzRAGEHarm/Zekken/pkg/platform"

type wasmPlatform struct{}

func (wasmPlatform) Name() string        { return "wasm" }
func (wasmPlatform) HasFilesystem() bool { return false }
func (wasmPlatform) SupportsColor() bool { return false }

func init() {
	platform.Current = wasmPlatform{}
}
