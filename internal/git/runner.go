package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultMaxOutputBytes caps buffered stdout per invocation. Diffs on
// large repositories can otherwise grow without bound.
const DefaultMaxOutputBytes = 20 << 20 // 20 MiB

// Timeout ceilings per operation class. Network-bound operations
// (clone, fetch, push, pull) get the longer ceiling.
const (
	LocalTimeout   = 30 * time.Second
	NetworkTimeout = 5 * time.Minute
)

// ExecOptions bounds a single invocation.
type ExecOptions struct {
	// Dir is the working directory the command runs in. Must already be
	// resolved and sanitized by the caller.
	Dir string
	// Timeout is the wall-clock ceiling. Zero means LocalTimeout.
	Timeout time.Duration
	// MaxOutputBytes caps buffered stdout. Zero means DefaultMaxOutputBytes.
	MaxOutputBytes int64
}

// RawResult is the captured output of a successful invocation.
// It is ephemeral: parsers consume it and it is discarded.
type RawResult struct {
	Stdout    string
	Stderr    string
	Truncated bool
}

// ExecError carries everything the error classifier needs about a
// failed invocation. The runner never interprets semantics itself.
type ExecError struct {
	Spec     CommandSpec
	Stdout   string
	Stderr   string
	ExitCode int
	NotFound bool
	TimedOut bool
	Err      error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return "git command failed: " + msg
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Runner executes CommandSpecs as subprocesses. It holds no state
// between calls; one Runner is safe for concurrent use.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the spec in opts.Dir with bounded time and output.
// On nonzero exit, timeout, or a missing binary it returns an
// *ExecError; it never raises raw exec errors past this boundary.
func (r *Runner) Run(ctx context.Context, spec CommandSpec, opts ExecOptions) (RawResult, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = LocalTimeout
	}
	maxBytes := opts.MaxOutputBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxOutputBytes
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, spec.Name, spec.Args...) // #nosec G204 -- argument vector, no shell
	cmd.Dir = opts.Dir

	stdout := &cappedBuffer{max: maxBytes}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		execErr := &ExecError{
			Spec:   spec,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}

		var notFound *exec.Error
		if errors.As(err, &notFound) {
			execErr.NotFound = true
			return RawResult{}, execErr
		}

		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			execErr.TimedOut = true
			return RawResult{}, execErr
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return RawResult{}, execErr
	}

	return RawResult{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.truncated,
	}, nil
}

// cappedBuffer keeps the first max bytes written and drops the rest,
// recording that truncation happened. Writes never fail so the
// subprocess is not killed by a full pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int64
	truncated bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := b.max - int64(b.buf.Len())
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if int64(len(p)) > remaining {
		b.truncated = true
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
