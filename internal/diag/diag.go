// Package diag implements Zekken's structured diagnostics: the five
// error kinds, their position/context payload, terminal rendering,
// and a process-wide deduplicating accumulator (spec.md §5).
package diag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/OzRAGEHarm/Zekken/internal/procenv"
	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

// Kind classifies a diagnostic. There are exactly five (spec.md §5).
type Kind string

const (
	KindSyntax    Kind = "Syntax"
	KindRuntime   Kind = "Runtime"
	KindType      Kind = "Type"
	KindReference Kind = "Reference"
	KindInternal  Kind = "Internal"
)

// Context carries the source snippet a diagnostic points at.
type Context struct {
	Filename    string
	Line        int
	Column      int
	LineContent string
	Pointer     string // caret-underline string, column-1 spaces then "^"
}

// Error is a single Zekken diagnostic.
type Error struct {
	Kind     Kind
	Message  string
	Context  Context
	Expected string // optional; set for Syntax and Type
	Found    string // optional; set for Syntax and Type
	Name     string // optional; the undefined name, set for Reference
}

// Error implements the error interface with a terse one-line form,
// independent of the multiline terminal rendering in Format.
func (e *Error) Error() string {
	if e.Context.Filename != "" {
		return fmt.Sprintf("%s error at %s:%d:%d: %s", e.Kind, e.Context.Filename, e.Context.Line, e.Context.Column, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func pointerFor(column int) string {
	if column < 1 {
		column = 1
	}
	return strings.Repeat(" ", column-1) + "^"
}

func newContext(pos token.Position, expected, found string) Context {
	filename := procenv.CurrentFileValue()
	if filename == "" {
		filename = "<unknown>"
	}
	return Context{
		Filename:    filename,
		Line:        pos.Line,
		Column:      pos.Column,
		LineContent: sourceLine(pos.Line),
		Pointer:     pointerFor(pos.Column),
	}
}

// sourceLine reads a 1-indexed line out of ZEKKEN_SOURCE_LINES, the
// newline-joined source cached by the evaluator at startup so errors
// don't need to re-read the file from disk (spec.md §6).
func sourceLine(line int) string {
	joined := procenv.Get(procenv.SourceLines)
	if joined == "" || line < 1 {
		return ""
	}
	lines := strings.Split(joined, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// NewSyntax builds a Syntax-kind diagnostic.
func NewSyntax(pos token.Position, message, expected, found string) *Error {
	return &Error{Kind: KindSyntax, Message: message, Context: newContext(pos, expected, found), Expected: expected, Found: found}
}

// NewRuntime builds a Runtime-kind diagnostic.
func NewRuntime(pos token.Position, message string) *Error {
	return &Error{Kind: KindRuntime, Message: message, Context: newContext(pos, "", "")}
}

// NewRuntimef builds a Runtime-kind diagnostic with formatting.
func NewRuntimef(pos token.Position, format string, args ...any) *Error {
	return NewRuntime(pos, fmt.Sprintf(format, args...))
}

// NewType builds a Type-kind diagnostic with expected/found payload.
func NewType(pos token.Position, message, expected, found string) *Error {
	return &Error{Kind: KindType, Message: message, Context: newContext(pos, expected, found), Expected: expected, Found: found}
}

// NewReference builds a Reference-kind diagnostic for an undefined name.
func NewReference(pos token.Position, name string) *Error {
	return &Error{
		Kind:    KindReference,
		Message: fmt.Sprintf("undefined reference: %s", name),
		Context: newContext(pos, "", ""),
		Name:    name,
	}
}

// NewInternal builds an Internal-kind diagnostic — a condition the
// interpreter itself should never reach.
func NewInternal(pos token.Position, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Context: newContext(pos, "", "")}
}

// colorEnabled reports whether ANSI escapes should be emitted: off
// when NO_COLOR is set, or TERM is "dumb" or unset (spec.md §5).
func colorEnabled() bool {
	return procenv.ColorEnabled()
}

const (
	ansiReset     = "\033[0m"
	ansiBoldRed   = "\033[1;31m"
	ansiBoldGreen = "\033[1;32m"
	ansiDimGray   = "\033[1;90m"
	ansiBoldWhite = "\033[1;37m"
)

// Format renders the diagnostic as the default multiline form: a
// colored kind label, a filename/line/column header, a numbered
// source line, a caret pointer, and an expected/found block when
// present (spec.md §6). Color follows colorEnabled unless overridden
// by the color argument.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	label := fmt.Sprintf("%s Error", e.Kind)
	if color {
		sb.WriteString(ansiBoldRed + label + ansiReset)
	} else {
		sb.WriteString(label)
	}
	sb.WriteString(": " + e.Message + "\n")

	if e.Context.Filename != "" {
		header := fmt.Sprintf("  %s:%d:%d", e.Context.Filename, e.Context.Line, e.Context.Column)
		if color {
			sb.WriteString(ansiDimGray + "  ┌─ " + ansiBoldWhite + e.Context.Filename + ansiReset + "\n")
			sb.WriteString(fmt.Sprintf("%s  ├─[ Line %s, Column %s ]%s\n", ansiDimGray, fmt.Sprint(e.Context.Line), fmt.Sprint(e.Context.Column), ansiReset))
		} else {
			sb.WriteString(header + "\n")
		}
	}

	if e.Context.LineContent != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Context.Line)
		sb.WriteString(lineNumStr + e.Context.LineContent + "\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
		if color {
			sb.WriteString(ansiBoldRed + e.Context.Pointer + ansiReset + "\n")
		} else {
			sb.WriteString(e.Context.Pointer + "\n")
		}
	}

	if e.Expected != "" || e.Found != "" {
		if color {
			sb.WriteString(fmt.Sprintf("Expected: %s%s%s\n", ansiBoldGreen, e.Expected, ansiReset))
			sb.WriteString(fmt.Sprintf("Found:    %s%s%s\n", ansiBoldRed, e.Found, ansiReset))
		} else {
			sb.WriteString(fmt.Sprintf("Expected: %s\n", e.Expected))
			sb.WriteString(fmt.Sprintf("Found:    %s\n", e.Found))
		}
	}

	return sb.String()
}

// ReplString renders a compact, ANSI-free single line for REPL output
// (spec.md §6).
func (e *Error) ReplString() string {
	if e.Context.Filename != "" && e.Context.Line > 0 {
		return fmt.Sprintf("%s error: %s (%d:%d)", e.Kind, e.Message, e.Context.Line, e.Context.Column)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Accumulator is the process-wide deduplicating error store. Its zero
// value is ready to use; Global holds the shared instance every stage
// reports into (spec.md §6's mutual-exclusion requirement).
type Accumulator struct {
	mu   sync.Mutex
	seen map[string]bool
	errs []*Error
}

// Global is the shared accumulator used across a single interpreter run.
var Global = &Accumulator{}

func dedupeKey(e *Error) string {
	return fmt.Sprintf("%s|%d|%d|%s", e.Kind, e.Context.Line, e.Context.Column, e.Message)
}

// Add records err unless an error with the same (kind, line, column,
// message) has already been recorded.
func (a *Accumulator) Add(err *Error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seen == nil {
		a.seen = make(map[string]bool)
	}
	key := dedupeKey(err)
	if a.seen[key] {
		return
	}
	a.seen[key] = true
	a.errs = append(a.errs, err)
}

// Errors returns a snapshot of the accumulated errors in report order.
func (a *Accumulator) Errors() []*Error {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*Error, len(a.errs))
	copy(out, a.errs)
	return out
}

// Len reports how many distinct errors have been accumulated.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.errs)
}

// Reset clears the accumulator. Used between REPL evaluations and in
// tests; a fresh interpreter run should start from a clean slate.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seen = nil
	a.errs = nil
}

// Drain formats every accumulated error and appends it to w, one per
// line, the shape `zekken run` uses before exiting with status 1
// (spec.md §6). It does not clear the accumulator.
func (a *Accumulator) Drain(w *strings.Builder) {
	color := colorEnabled()
	for _, e := range a.Errors() {
		w.WriteString(e.Format(color))
		w.WriteString("\n")
	}
}
