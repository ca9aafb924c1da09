package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "git", Cmd("git").String())
	assert.Equal(t, "git clone --depth=1 url dir", Cmd("git", "clone", "--depth=1", "url", "dir").String())
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	skipWithoutShell(t)

	r := NewExecRunner(nil)
	out, err := r.Run(context.Background(), Cmd("sh", "-c", "pwd; echo oops >&2"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.NotEmpty(t, out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
}

func TestExecRunner_StreamsWhenRequested(t *testing.T) {
	skipWithoutShell(t)

	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	cmd := Cmd("sh", "-c", "echo installing")
	cmd.Stream = true

	out, err := r.Run(context.Background(), cmd, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "installing\n", stdout.String())
	assert.Equal(t, "installing\n", out.Stdout)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	r := NewExecRunner(nil)
	dir := t.TempDir()
	out, err := r.Run(context.Background(), Cmd("sh", "-c", "echo fatal >&2; exit 3"), dir)
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, dir, cmdErr.Dir)
	assert.Contains(t, cmdErr.Error(), "fatal")
	assert.Equal(t, 3, out.ExitCode)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), Cmd("definitely-not-a-real-binary-xyz"), t.TempDir())
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "not found in PATH")
}
