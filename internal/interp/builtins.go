package interp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RegisterBuiltins installs the three host functions new() binds into
// the root scope before any user code runs (spec.md §4.4): println,
// input, and parse_json. println writes to out and input reads from
// in, so the embedded build can redirect println into a buffer and
// the REPL/CLI can wire up os.Stdout/os.Stdin (spec.md §4's "Embedded
// interface").
func RegisterBuiltins(root *Environment, out io.Writer, in io.Reader) {
	reader := bufio.NewReader(in)
	root.Declare("println", nativeFn(builtinPrintln(out)), true)
	root.Declare("input", nativeFn(builtinInput(reader, out)), true)
	root.Declare("parse_json", nativeFn(builtinParseJSON), true)
}

func nativeFn(fn NativeFunc) Value {
	return Value{Kind: NativeFunctionKind, Native: fn}
}

// builtinPrintln joins each argument's display form with a space and
// writes a trailing newline, mirroring the source's println builtin.
func builtinPrintln(out io.Writer) NativeFunc {
	return func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return Void(), nil
	}
}

// builtinInput reads one line from r, printing an optional prompt
// argument to out first, and returns the line without its trailing
// line break (spec.md §4.4).
func builtinInput(r *bufio.Reader, out io.Writer) NativeFunc {
	reader := r
	return func(args []Value) (Value, error) {
		if len(args) > 0 {
			fmt.Fprint(out, args[0].String())
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return String(""), nil
		}
		return String(strings.TrimRight(line, "\r\n")), nil
	}
}

// builtinParseJSON decodes a JSON text value into the Zekken Value
// tree, preserving object key order via json.Decoder's token stream so
// parse_json(...).keys() reflects decode order rather than Go map
// iteration order (SPEC_FULL.md §4 point 4).
func builtinParseJSON(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != StringKind {
		return Value{}, fmt.Errorf("parse_json expects a single string argument")
	}
	dec := json.NewDecoder(strings.NewReader(args[0].Str))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case string:
		return String(t), nil
	case bool:
		return Boolean(t), nil
	case nil:
		return Void(), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	var keys []string
	props := make(map[string]Value)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return Value{}, err
		}
		keys = append(keys, key)
		props[key] = val
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return Value{}, err
	}
	return NewObject(keys, props), nil
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	var elems []Value
	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, val)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return Value{}, err
	}
	return NewArray(elems), nil
}
