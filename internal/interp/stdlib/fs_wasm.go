//go:build js && wasm

package stdlib

import "github.com/OzRAGEHarm/Zekken/internal/interp"

func init() {
	interp.RegisterLibrary("fs", buildFsLibrary)
}

// buildFsLibrary on the wasm/js platform has no filesystem to reach: a
// browser sandbox gives scripts no path-addressable storage, so every
// entry point is a native function that always reports the same
// runtime error rather than partially working (SPEC_FULL.md §4 point 3).
func buildFsLibrary() interp.Value {
	keys := []string{
		"read_file", "write_file", "read_dir",
		"create_dir", "create_dir_all", "remove_dir", "remove_dir_all",
		"exists", "is_file", "is_dir", "remove_file",
	}
	unavailable := nativeOf(func(args []interp.Value) (interp.Value, error) {
		return interp.Value{}, errf("filesystem unavailable in this build")
	})
	props := make(map[string]interp.Value, len(keys))
	for _, k := range keys {
		props[k] = unavailable
	}
	return interp.NewObject(keys, props)
}
