// Package git provides a wrapper around external command execution and
// go-git for repository inspection.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Result holds the outcome of one external command invocation: the combined
// stdout-then-stderr output and the process exit code.
type Result struct {
	Output   string
	ExitCode int
}

// Ok reports whether the command exited successfully.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// NothingToCommit reports whether a failed commit was a no-op commit attempt.
func (r Result) NothingToCommit() bool {
	return strings.Contains(strings.ToLower(r.Output), "nothing to commit")
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// CommandRunner handles execution of external commands.
type CommandRunner struct {
	workingDir string
	logger     *slog.Logger
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir.
// An empty workingDir runs commands in the process working directory.
func NewCommandRunner(workingDir string, logger *slog.Logger) *CommandRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CommandRunner{workingDir: workingDir, logger: logger}
}

// Run executes a command and blocks until it exits. Stdout and stderr are
// captured in separate buffers and concatenated stdout-first, so the two
// streams never interleave. There is no timeout beyond the context: a hung
// child hangs the caller.
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Output: stdout.String() + stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// The command never started (not found, permission denied).
			// Reported like any other failure, with the error as output.
			res.ExitCode = 1
			res.Output = err.Error()
		}
	}

	r.logger.Debug("command finished",
		"command", name,
		"args", strings.Join(args, " "),
		"exitCode", res.ExitCode,
		"duration", time.Since(start))

	return res
}

// StatusShort returns the `git status --short` output for the menu footer.
// Failures come back as an empty string; the footer simply stays blank.
func StatusShort(ctx context.Context, runner Runner) string {
	res := runner.Run(ctx, "git", "status", "--short")
	if !res.Ok() {
		return ""
	}
	return strings.TrimRight(res.Output, "\n")
}
