package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Command describes one external program invocation.
type Command struct {
	Name string
	Args []string

	// Stream mirrors the child's stdout and stderr to the runner's writers
	// while still capturing them. Used for long, user-visible steps such as
	// dependency installation.
	Stream bool
}

// Cmd builds a captured Command.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command line for messages and logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Output captures the result of a finished command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a command in a working directory and waits for it.
type Runner interface {
	Run(ctx context.Context, cmd Command, dir string) (*Output, error)
}

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Command  Command
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Env overrides the child environment when non-nil.
	Env []string
	Log *zap.Logger
}

// NewExecRunner returns an ExecRunner logging to log (nil means no logging).
func NewExecRunner(log *zap.Logger) *ExecRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExecRunner{Log: log}
}

// Run starts cmd in dir and waits for it to finish. A non-zero exit status is
// returned as a *CommandError alongside the captured Output.
func (r *ExecRunner) Run(ctx context.Context, cmd Command, dir string) (*Output, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return nil, &CommandError{Command: cmd, Dir: dir, ExitCode: -1, Err: fmt.Errorf("%s not found in PATH: %w", cmd.Name, err)}
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = dir
	if r.Env != nil {
		c.Env = r.Env
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if cmd.Stream {
		stdout := r.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		stderr := r.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		c.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		c.Stderr = io.MultiWriter(stderr, &stderrBuf)
	} else {
		c.Stdout = &stdoutBuf
		c.Stderr = &stderrBuf
	}

	log.Debug("running command", zap.Stringer("cmd", cmd), zap.String("dir", dir))
	err = c.Run()

	out := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		out.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		}
		log.Debug("command failed", zap.Stringer("cmd", cmd), zap.Int("exit_code", out.ExitCode), zap.Error(err))
		return out, &CommandError{
			Command:  cmd,
			Dir:      dir,
			ExitCode: out.ExitCode,
			Stderr:   out.Stderr,
			Err:      err,
		}
	}

	log.Debug("command finished", zap.Stringer("cmd", cmd))
	return out, nil
}
