package taskwarrior

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// MaxOutputBytes caps the stdout a single invocation may produce. A command
// exceeding the cap fails outright rather than returning a silently truncated
// result.
const MaxOutputBytes = 10 << 20

// DefaultShell runs invocations that carry no shell override.
const DefaultShell = "/bin/sh"

// Runner executes a built invocation and returns its standard output.
type Runner interface {
	Run(ctx context.Context, inv *Invocation) (string, error)
}

// ShellRunner executes invocations through a shell so that pipe constructs in
// the token stream (the bulk-modify confirmation pipe) work. The command line
// handed to the shell is the joined token sequence; free text is already
// single-quoted by the builder.
type ShellRunner struct {
	// Shell is the default interpreter. Empty means DefaultShell. An
	// invocation's own Shell field takes precedence.
	Shell string

	// Env replaces the child's environment when non-nil; nil inherits the
	// parent's.
	Env []string
}

func (sr *ShellRunner) Run(ctx context.Context, inv *Invocation) (string, error) {
	shell := sr.Shell
	if shell == "" {
		shell = DefaultShell
	}
	if inv.Shell != "" {
		shell = inv.Shell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", inv.CommandLine())
	if sr.Env != nil {
		cmd.Env = sr.Env
	} else {
		cmd.Env = os.Environ()
	}

	stdout := &limitedBuffer{limit: MaxOutputBytes}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.exceeded {
		return "", &ExecutionError{
			Message: fmt.Sprintf("command output exceeded %d bytes", MaxOutputBytes),
		}
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = err.Error()
		}
		return "", &ExecutionError{Message: msg, Err: err}
	}
	return stdout.String(), nil
}

// limitedBuffer accepts writes indefinitely but stops retaining bytes past
// its limit. Continuing to consume keeps the child's stdout pipe drained, so
// an over-limit process still runs to completion instead of blocking.
type limitedBuffer struct {
	buf      bytes.Buffer
	limit    int
	exceeded bool
}

func (lb *limitedBuffer) Write(p []byte) (int, error) {
	remaining := lb.limit - lb.buf.Len()
	if remaining <= 0 {
		lb.exceeded = true
		return len(p), nil
	}
	if len(p) > remaining {
		lb.exceeded = true
		lb.buf.Write(p[:remaining])
		return len(p), nil
	}
	return lb.buf.Write(p)
}

func (lb *limitedBuffer) String() string {
	return lb.buf.String()
}
