package zekken

import "testing"

func TestRunSourceReturnsLastExpressionResult(t *testing.T) {
	out, err := RunSource(`let x: int = 40; x + 2;`)
	if err != nil {
		t.Fatalf("RunSource errored: %v", err)
	}
	if out != "42" {
		t.Errorf("out = %q, want %q", out, "42")
	}
}

func TestRunSourceCapturesPrintln(t *testing.T) {
	out, err := RunSource(`println => |"hello"|;`)
	if err != nil {
		t.Fatalf("RunSource errored: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("out = %q, want %q", out, "hello\n")
	}
}

func TestRunSourceReportsParseErrors(t *testing.T) {
	out, err := RunSource(`let x: int = ;`)
	if err != nil {
		t.Fatalf("RunSource should report parse errors in its text result, not as a Go error: %v", err)
	}
	if out == "" {
		t.Error("want non-empty error rendering for invalid source")
	}
}

func TestRunSourceReportsRuntimeErrors(t *testing.T) {
	out, err := RunSource(`1 + 1.5;`)
	if err != nil {
		t.Fatalf("RunSource should report runtime errors in its text result, not as a Go error: %v", err)
	}
	if out == "" {
		t.Error("want non-empty error rendering for a type-mismatched expression")
	}
}

func TestRunSourceIsolatesSuccessiveCalls(t *testing.T) {
	if _, err := RunSource(`1 + 1.5;`); err != nil {
		t.Fatalf("first RunSource errored: %v", err)
	}
	out, err := RunSource(`1;`)
	if err != nil {
		t.Fatalf("second RunSource errored: %v", err)
	}
	if out != "1" {
		t.Errorf("out = %q, want %q: diagnostics from the prior call must not leak", out, "1")
	}
}
