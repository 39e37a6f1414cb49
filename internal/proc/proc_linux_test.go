package proc

import (
	"os"
	"testing"
)

func TestCwdCurrentProcess(t *testing.T) {
	want, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if got := Cwd(os.Getpid()); got != want {
		t.Fatalf("Cwd=%q want %q", got, want)
	}
}

func TestExeCurrentProcess(t *testing.T) {
	if got := Exe(os.Getpid()); got == "" {
		t.Fatalf("expected non-empty executable name")
	}
}

func TestLookupsTolerateBadPid(t *testing.T) {
	if got := Cwd(0); got != "" {
		t.Fatalf("Cwd(0)=%q want empty", got)
	}
	if got := Exe(-1); got != "" {
		t.Fatalf("Exe(-1)=%q want empty", got)
	}
}
