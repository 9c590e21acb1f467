//go:build !(js && wasm)

package stdlib

import (
	"os"
	"path/filepath"

	"github.com/OzRAGEHarm/Zekken/internal/interp"
)

func init() {
	interp.RegisterLibrary("fs", buildFsLibrary)
}

// buildFsLibrary mirrors original_source/src/libraries/fs.rs: read/write
// a whole file at once, list a directory as full paths, create/remove
// directories (with _all recursive variants), and boolean existence
// checks that never error on a missing path.
func buildFsLibrary() interp.Value {
	keys := []string{
		"read_file", "write_file", "read_dir",
		"create_dir", "create_dir_all", "remove_dir", "remove_dir_all",
		"exists", "is_file", "is_dir", "remove_file",
	}
	props := map[string]interp.Value{
		"read_file":      nativeOf(fsReadFile),
		"write_file":     nativeOf(fsWriteFile),
		"read_dir":       nativeOf(fsReadDir),
		"create_dir":     nativeOf(fsCreateDir(false)),
		"create_dir_all": nativeOf(fsCreateDir(true)),
		"remove_dir":     nativeOf(fsRemoveDir(false)),
		"remove_dir_all": nativeOf(fsRemoveDir(true)),
		"exists":         nativeOf(fsExists),
		"is_file":        nativeOf(fsIsFile),
		"is_dir":         nativeOf(fsIsDir),
		"remove_file":    nativeOf(fsRemoveFile),
	}
	return interp.NewObject(keys, props)
}

func stringArg(args []interp.Value, i int, fnName string) (string, error) {
	if i >= len(args) || args[i].Kind != interp.StringKind {
		return "", errf(fnName + " expects a string path argument")
	}
	return args[i].Str, nil
}

func fsReadFile(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "read_file")
	if err != nil {
		return interp.Value{}, err
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return interp.Value{}, errf("read_file: " + readErr.Error())
	}
	return interp.String(string(data)), nil
}

func fsWriteFile(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "write_file")
	if err != nil {
		return interp.Value{}, err
	}
	if len(args) != 2 || args[1].Kind != interp.StringKind {
		return interp.Value{}, errf("write_file expects (path, contents) as strings")
	}
	if writeErr := os.WriteFile(path, []byte(args[1].Str), 0o644); writeErr != nil {
		return interp.Value{}, errf("write_file: " + writeErr.Error())
	}
	return interp.Boolean(true), nil
}

func fsReadDir(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "read_dir")
	if err != nil {
		return interp.Value{}, err
	}
	entries, readErr := os.ReadDir(path)
	if readErr != nil {
		return interp.Value{}, errf("read_dir: " + readErr.Error())
	}
	elems := make([]interp.Value, len(entries))
	for i, e := range entries {
		elems[i] = interp.String(filepath.Join(path, e.Name()))
	}
	return interp.NewArray(elems), nil
}

func fsCreateDir(recursive bool) interp.NativeFunc {
	return func(args []interp.Value) (interp.Value, error) {
		name := "create_dir"
		if recursive {
			name = "create_dir_all"
		}
		path, err := stringArg(args, 0, name)
		if err != nil {
			return interp.Value{}, err
		}
		var mkErr error
		if recursive {
			mkErr = os.MkdirAll(path, 0o755)
		} else {
			mkErr = os.Mkdir(path, 0o755)
		}
		if mkErr != nil {
			return interp.Value{}, errf(name + ": " + mkErr.Error())
		}
		return interp.Boolean(true), nil
	}
}

func fsRemoveDir(recursive bool) interp.NativeFunc {
	return func(args []interp.Value) (interp.Value, error) {
		name := "remove_dir"
		if recursive {
			name = "remove_dir_all"
		}
		path, err := stringArg(args, 0, name)
		if err != nil {
			return interp.Value{}, err
		}
		var rmErr error
		if recursive {
			rmErr = os.RemoveAll(path)
		} else {
			rmErr = os.Remove(path)
		}
		if rmErr != nil {
			return interp.Value{}, errf(name + ": " + rmErr.Error())
		}
		return interp.Boolean(true), nil
	}
}

func fsExists(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "exists")
	if err != nil {
		return interp.Value{}, err
	}
	_, statErr := os.Stat(path)
	return interp.Boolean(statErr == nil), nil
}

func fsIsFile(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "is_file")
	if err != nil {
		return interp.Value{}, err
	}
	info, statErr := os.Stat(path)
	return interp.Boolean(statErr == nil && !info.IsDir()), nil
}

func fsIsDir(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "is_dir")
	if err != nil {
		return interp.Value{}, err
	}
	info, statErr := os.Stat(path)
	return interp.Boolean(statErr == nil && info.IsDir()), nil
}

func fsRemoveFile(args []interp.Value) (interp.Value, error) {
	path, err := stringArg(args, 0, "remove_file")
	if err != nil {
		return interp.Value{}, err
	}
	if rmErr := os.Remove(path); rmErr != nil {
		return interp.Value{}, errf("remove_file: " + rmErr.Error())
	}
	return interp.Boolean(true), nil
}
