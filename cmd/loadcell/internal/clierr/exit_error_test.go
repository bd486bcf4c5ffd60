package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeOf(t *testing.T) {
	if got := ExitCodeOf(nil); got != 0 {
		t.Errorf("nil error: got %d, want 0", got)
	}
	if got := ExitCodeOf(errors.New("plain")); got != CodeRuntime {
		t.Errorf("plain error: got %d, want %d", got, CodeRuntime)
	}
	if got := ExitCodeOf(New(CodeConfig, "bad plan")); got != CodeConfig {
		t.Errorf("config error: got %d, want %d", got, CodeConfig)
	}
}

func TestExitCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeConfig, "inner"))
	if got := ExitCodeOf(err); got != CodeConfig {
		t.Errorf("got %d, want %d", got, CodeConfig)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeRuntime, "reading journal", cause)

	if !errors.Is(err, cause) {
		t.Errorf("wrapped cause not reachable via errors.Is")
	}
	if err.Error() != "reading journal: boom" {
		t.Errorf("got %q", err.Error())
	}
}

func TestNew_NormalizesZeroCode(t *testing.T) {
	if got := ExitCodeOf(New(0, "x")); got != CodeRuntime {
		t.Errorf("got %d, want %d", got, CodeRuntime)
	}
}
