package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// skipWithoutGit skips tests that need a real git binary.
func skipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(Binary); err != nil {
		t.Skip("git not installed")
	}
}

func TestRunnerRun(t *testing.T) {
	skipWithoutGit(t)
	runner := NewRunner()

	t.Run("version succeeds", func(t *testing.T) {
		result, err := runner.Run(context.Background(), Build("version"), ExecOptions{})
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if !strings.Contains(result.Stdout, "git version") {
			t.Errorf("Run() stdout = %q", result.Stdout)
		}
		if result.Truncated {
			t.Error("Run() truncated = true for tiny output")
		}
	})

	t.Run("nonzero exit yields ExecError", func(t *testing.T) {
		_, err := runner.Run(context.Background(), Build("not-a-subcommand"), ExecOptions{})
		var execErr *ExecError
		if !errors.As(err, &execErr) {
			t.Fatalf("Run() error = %T, want *ExecError", err)
		}
		if execErr.ExitCode == 0 {
			t.Error("ExecError exit code = 0, want nonzero")
		}
		if execErr.NotFound {
			t.Error("ExecError notFound = true for installed binary")
		}
	})

	t.Run("outside a repository fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := runner.Run(context.Background(), Build("rev-parse", "HEAD"), ExecOptions{Dir: tmpDir})
		var execErr *ExecError
		if !errors.As(err, &execErr) {
			t.Fatalf("Run() error = %T, want *ExecError", err)
		}
		if !strings.Contains(execErr.Stderr, "not a git repository") {
			t.Errorf("ExecError stderr = %q", execErr.Stderr)
		}
	})
}

func TestRunnerMissingBinary(t *testing.T) {
	runner := NewRunner()
	spec := CommandSpec{Name: "definitely-not-a-real-binary-7f3a", Args: []string{"x"}}

	_, err := runner.Run(context.Background(), spec, ExecOptions{})
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}
	if !execErr.NotFound {
		t.Error("ExecError notFound = false, want true for missing binary")
	}
}

func TestRunnerTimeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	runner := NewRunner()
	spec := CommandSpec{Name: "sleep", Args: []string{"5"}}

	_, err := runner.Run(context.Background(), spec, ExecOptions{Timeout: 50 * time.Millisecond})
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}
	if !execErr.TimedOut {
		t.Error("ExecError timedOut = false, want true")
	}
}

func TestCappedBuffer(t *testing.T) {
	buf := &cappedBuffer{max: 5}

	n, err := buf.Write([]byte("abcdefgh"))
	if err != nil || n != 8 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if buf.String() != "abcde" {
		t.Errorf("String() = %q, want first 5 bytes", buf.String())
	}
	if !buf.truncated {
		t.Error("truncated = false, want true")
	}

	// Further writes are dropped but still succeed.
	if _, err := buf.Write([]byte("more")); err != nil {
		t.Errorf("Write() after cap: %v", err)
	}
	if buf.String() != "abcde" {
		t.Errorf("String() after cap = %q", buf.String())
	}
}
