package stdlib

import (
	"os"
	"runtime"
	"time"

	"github.com/OzRAGEHarm/Zekken/internal/interp"
	"github.com/OzRAGEHarm/Zekken/internal/procenv"
)

func init() {
	interp.RegisterLibrary("os", buildOsLibrary)
}

// buildOsLibrary mirrors original_source/src/libraries/os.rs. env
// returns an empty string for an unset key and ls lists "." when given
// no argument; both still error on wrongly-typed arguments, and ls on
// an unreadable directory. exit calls os.Exit directly rather than
// porting the original's "ZK_EXIT_CODE: N" sentinel-error string, since
// Go already has a real process-exit primitive and there is no reason
// to smuggle the exit code through the diagnostic channel.
func buildOsLibrary() interp.Value {
	keys := []string{"cwd", "ls", "env", "set_env", "remove_env", "platform", "exit", "pid", "sleep"}
	props := map[string]interp.Value{
		"cwd":        nativeOf(osCwd),
		"ls":         nativeOf(osLs),
		"env":        nativeOf(osEnv),
		"set_env":    nativeOf(osSetEnv),
		"remove_env": nativeOf(osRemoveEnv),
		"platform":   nativeOf(osPlatform),
		"exit":       nativeOf(osExit),
		"pid":        nativeOf(osPid),
		"sleep":      nativeOf(osSleep),
	}
	return interp.NewObject(keys, props)
}

func osCwd(args []interp.Value) (interp.Value, error) {
	dir, err := os.Getwd()
	if err != nil {
		return interp.Value{}, errf("cwd: " + err.Error())
	}
	return interp.String(dir), nil
}

func osLs(args []interp.Value) (interp.Value, error) {
	path := "."
	if len(args) == 1 {
		if args[0].Kind != interp.StringKind {
			return interp.Value{}, errf("ls expects a string path argument")
		}
		path = args[0].Str
	} else if len(args) > 1 {
		return interp.Value{}, errf("ls expects at most one argument")
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return interp.Value{}, errf("ls: " + err.Error())
	}
	names := make([]interp.Value, len(entries))
	for i, e := range entries {
		names[i] = interp.String(e.Name())
	}
	return interp.NewArray(names), nil
}

func osEnv(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 || args[0].Kind != interp.StringKind {
		return interp.Value{}, errf("env expects a single string key argument")
	}
	return interp.String(procenv.Get(args[0].Str)), nil
}

func osSetEnv(args []interp.Value) (interp.Value, error) {
	if len(args) != 2 || args[0].Kind != interp.StringKind || args[1].Kind != interp.StringKind {
		return interp.Value{}, errf("set_env expects (key, value) as strings")
	}
	if err := procenv.Set(args[0].Str, args[1].Str); err != nil {
		return interp.Value{}, errf("set_env: " + err.Error())
	}
	return interp.Void(), nil
}

func osRemoveEnv(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 || args[0].Kind != interp.StringKind {
		return interp.Value{}, errf("remove_env expects a single string key argument")
	}
	if err := procenv.Unset(args[0].Str); err != nil {
		return interp.Value{}, errf("remove_env: " + err.Error())
	}
	return interp.Void(), nil
}

func osPlatform(args []interp.Value) (interp.Value, error) {
	return interp.String(runtime.GOOS), nil
}

func osExit(args []interp.Value) (interp.Value, error) {
	code := 0
	if len(args) == 1 {
		if args[0].Kind != interp.IntKind {
			return interp.Value{}, errf("exit expects an integer exit code")
		}
		code = int(args[0].Int)
	} else if len(args) > 1 {
		return interp.Value{}, errf("exit expects at most one argument")
	}
	os.Exit(code)
	return interp.Void(), nil // unreachable
}

func osPid(args []interp.Value) (interp.Value, error) {
	return interp.Int(int64(os.Getpid())), nil
}

func osSleep(args []interp.Value) (interp.Value, error) {
	if len(args) != 1 {
		return interp.Value{}, errf("sleep expects a single millisecond count")
	}
	ms, ok := numeric(args[0])
	if !ok {
		return interp.Value{}, errf("sleep expects a numeric millisecond count")
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return interp.Void(), nil
}
