package diag

import (
	"os"
	"testing"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

func TestNewRuntimeErrorMessage(t *testing.T) {
	os.Unsetenv("ZEKKEN_CURRENT_FILE")
	err := NewRuntime(token.Position{Line: 2, Column: 5}, "division by zero")
	if err.Kind != KindRuntime {
		t.Errorf("Kind = %v, want Runtime", err.Kind)
	}
	if err.Context.Filename != "<unknown>" {
		t.Errorf("Filename = %q, want <unknown> when ZEKKEN_CURRENT_FILE unset", err.Context.Filename)
	}
}

func TestNewReferenceErrorMessage(t *testing.T) {
	err := NewReference(token.Position{Line: 1, Column: 1}, "foo")
	if err.Name != "foo" {
		t.Errorf("Name = %q, want foo", err.Name)
	}
	if got := err.Error(); got == "" {
		t.Error("Error() returned empty string")
	}
}

func TestPointerForColumn(t *testing.T) {
	if got := pointerFor(1); got != "^" {
		t.Errorf("pointerFor(1) = %q, want \"^\"", got)
	}
	if got := pointerFor(4); got != "   ^" {
		t.Errorf("pointerFor(4) = %q, want 3 spaces + caret", got)
	}
}

func TestSourceLineFromEnv(t *testing.T) {
	os.Setenv("ZEKKEN_SOURCE_LINES", "let x = 1;\nlet y = 2;")
	defer os.Unsetenv("ZEKKEN_SOURCE_LINES")
	if got := sourceLine(2); got != "let y = 2;" {
		t.Errorf("sourceLine(2) = %q", got)
	}
	if got := sourceLine(99); got != "" {
		t.Errorf("sourceLine(99) = %q, want empty", got)
	}
}

func TestFormatIncludesExpectedFound(t *testing.T) {
	e := NewSyntax(token.Position{Line: 1, Column: 1}, "unexpected token", "IDENT", "SEMICOLON")
	out := e.Format(false)
	if !contains(out, "Expected: IDENT") || !contains(out, "Found:    SEMICOLON") {
		t.Errorf("Format() missing expected/found block: %s", out)
	}
}

func TestReplStringIsSingleLine(t *testing.T) {
	e := NewType(token.Position{Line: 3, Column: 4}, "type mismatch", "int", "string")
	out := e.ReplString()
	if contains(out, "\n") {
		t.Errorf("ReplString() should be single-line, got %q", out)
	}
}

func TestAccumulatorDeduplicates(t *testing.T) {
	acc := &Accumulator{}
	pos := token.Position{Line: 1, Column: 1}
	acc.Add(NewRuntime(pos, "boom"))
	acc.Add(NewRuntime(pos, "boom"))
	acc.Add(NewRuntime(token.Position{Line: 2, Column: 1}, "boom"))
	if acc.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (one dup suppressed)", acc.Len())
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc := &Accumulator{}
	acc.Add(NewRuntime(token.Position{Line: 1, Column: 1}, "boom"))
	acc.Reset()
	if acc.Len() != 0 {
		t.Errorf("Len() after Reset() = %d, want 0", acc.Len())
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
