package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktmlm/RUC/cmd/ruc/commands"
	"github.com/ktmlm/RUC/internal/app"
	"github.com/ktmlm/RUC/internal/build"
	"github.com/ktmlm/RUC/internal/core/domain"
)

type mockApp struct {
	runFunc     func(ctx context.Context, target string, opts app.RunOptions) error
	targetsFunc func(ctx context.Context) ([]domain.Target, error)
}

func (m *mockApp) Run(ctx context.Context, target string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, target, opts)
	}
	return nil
}

func (m *mockApp) Targets(ctx context.Context) ([]domain.Target, error) {
	if m.targetsFunc != nil {
		return m.targetsFunc(ctx)
	}
	return nil, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedTarget string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, target string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedTarget = target
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build", "--dry-run", "--watch"})

		// We don't care about output here, just flag propagation
		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.DryRun)
		assert.True(t, capturedOpts.Watch)
		assert.Equal(t, "build", capturedTarget)
	})

	t.Run("no argument requests the default target", func(t *testing.T) {
		var capturedTarget string

		mock := &mockApp{
			runFunc: func(_ context.Context, target string, _ app.RunOptions) error {
				capturedTarget = target
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedTarget)
	})

	t.Run("rejects more than one target", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "build", "test"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "target"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		targetsFunc: func(_ context.Context) ([]domain.Target, error) {
			return []domain.Target{
				{
					Name:     domain.NewInternedString("build"),
					Commands: []domain.Command{{"go", "build", "./..."}},
				},
				{
					Name:          domain.NewInternedString("all"),
					Prerequisites: domain.NewInternedStrings([]string{"build"}),
				},
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"list"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "build\n    go build ./...\n")
	assert.Contains(t, buf.String(), "all (after build)\n")
}

func TestCommands_List_Error(t *testing.T) {
	mock := &mockApp{
		targetsFunc: func(_ context.Context) ([]domain.Target, error) {
			return nil, errors.New("config parse failed")
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"list"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config parse failed")
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
