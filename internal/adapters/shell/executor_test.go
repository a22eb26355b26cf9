package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/adapters/shell"
	"github.com/ktmlm/RUC/internal/core/domain"
)

func TestExecutor_Execute_StreamsStdout(t *testing.T) {
	executor := shell.NewExecutor()

	var stdout bytes.Buffer
	cmd := domain.Command{"sh", "-c", "echo hello"}

	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecutor_Execute_KeepsStreamsSeparate(t *testing.T) {
	executor := shell.NewExecutor()

	var stdout, stderr bytes.Buffer
	cmd := domain.Command{"sh", "-c", "echo out; echo err >&2"}

	err := executor.Execute(context.Background(), cmd, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_InheritsEnvironment(t *testing.T) {
	t.Setenv("RUC_TEST_VAR", "inherited-value")

	executor := shell.NewExecutor()

	var stdout bytes.Buffer
	cmd := domain.Command{"sh", "-c", "echo $RUC_TEST_VAR"}

	err := executor.Execute(context.Background(), cmd, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "inherited-value\n", stdout.String())
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{"sh", "-c", "exit 7"}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	// The original exit error stays reachable so callers can propagate the
	// exact status.
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.ExitCode())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 7, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	executor := shell.NewExecutor()

	cmd := domain.Command{"nonexistent-command-xyz123"}

	err := executor.Execute(context.Background(), cmd, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command could not start")
	assert.ErrorIs(t, err, exec.ErrNotFound)

	var exitErr *exec.ExitError
	assert.False(t, errors.As(err, &exitErr), "a command that never started has no exit status")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor()

	err := executor.Execute(context.Background(), domain.Command{}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Execute_ContextCancelled(t *testing.T) {
	executor := shell.NewExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := domain.Command{"sh", "-c", "sleep 10"}

	err := executor.Execute(ctx, cmd, io.Discard, io.Discard)
	require.Error(t, err)
}
