package procenv

import "testing"

func TestSetGetUnset(t *testing.T) {
	const key = "ZEKKEN_TEST_PROCENV_KEY"
	t.Cleanup(func() { _ = Unset(key) })

	if got := Get(key); got != "" {
		t.Fatalf("Get(%q) = %q before Set, want empty", key, got)
	}
	if err := Set(key, "value"); err != nil {
		t.Fatalf("Set errored: %v", err)
	}
	if got := Get(key); got != "value" {
		t.Errorf("Get(%q) = %q, want %q", key, got, "value")
	}
	if err := Unset(key); err != nil {
		t.Fatalf("Unset errored: %v", err)
	}
	if got := Get(key); got != "" {
		t.Errorf("Get(%q) = %q after Unset, want empty", key, got)
	}
}

func TestSwapCurrentFileRestoresPrevious(t *testing.T) {
	prev := Get(CurrentFile)
	t.Cleanup(func() { _ = Set(CurrentFile, prev) })

	_ = Set(CurrentFile, "original.zk")
	restore := SwapCurrentFile("swapped.zk")
	if got := Get(CurrentFile); got != "swapped.zk" {
		t.Fatalf("CurrentFile = %q after swap, want %q", got, "swapped.zk")
	}
	restore()
	if got := Get(CurrentFile); got != "original.zk" {
		t.Errorf("CurrentFile = %q after restore, want %q", got, "original.zk")
	}
}

func TestColorEnabled(t *testing.T) {
	prevNoColor, prevTerm := Get(NoColor), Get(Term)
	t.Cleanup(func() {
		_ = Set(NoColor, prevNoColor)
		_ = Set(Term, prevTerm)
	})

	_ = Set(NoColor, "1")
	if ColorEnabled() {
		t.Error("ColorEnabled() should be false when NO_COLOR is set")
	}

	_ = Set(NoColor, "")
	_ = Set(Term, "dumb")
	if ColorEnabled() {
		t.Error("ColorEnabled() should be false when TERM=dumb")
	}

	_ = Set(Term, "xterm-256color")
	if !ColorEnabled() {
		t.Error("ColorEnabled() should be true for a real TERM with NO_COLOR unset")
	}
}
