// Package processtest provides a scripted process.Runner for tests.
package processtest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fiasuz/create-fias/internal/process"
)

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Cmd process.Command
	Dir string
}

// Handler reacts to a matched command. It may touch the filesystem to mimic
// the real program (e.g., create files for a clone).
type Handler func(cmd process.Command, dir string) (*process.Output, error)

// FakeRunner answers commands from registered handlers and records every call.
// Commands without a handler succeed with empty output.
type FakeRunner struct {
	mu       sync.Mutex
	handlers []route
	calls    []Call
}

type route struct {
	prefix  string
	handler Handler
}

// On registers h for commands whose rendered line starts with prefix, e.g.
// "git clone" or "npm install". Later registrations take precedence.
func (f *FakeRunner) On(prefix string, h Handler) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append([]route{{prefix: prefix, handler: h}}, f.handlers...)
	return f
}

// Fail makes commands starting with prefix exit with status 1.
func (f *FakeRunner) Fail(prefix, stderr string) *FakeRunner {
	return f.On(prefix, func(cmd process.Command, dir string) (*process.Output, error) {
		out := &process.Output{ExitCode: 1, Stderr: stderr}
		return out, &process.CommandError{
			Command:  cmd,
			Dir:      dir,
			ExitCode: 1,
			Stderr:   stderr,
			Err:      errors.New("exit status 1"),
		}
	})
}

// Run implements process.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd process.Command, dir string) (*process.Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Cmd: cmd, Dir: dir})
	handlers := f.handlers
	f.mu.Unlock()

	line := cmd.String()
	for _, r := range handlers {
		if strings.HasPrefix(line, r.prefix) {
			return r.handler(cmd, dir)
		}
	}
	return &process.Output{}, nil
}

// Calls returns a copy of the recorded invocations in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Lines returns the rendered command lines in call order.
func (f *FakeRunner) Lines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Cmd.String()
	}
	return lines
}
