package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/ktmlm/RUC/internal/adapters/watcher"
	"github.com/ktmlm/RUC/internal/core/domain"
	"github.com/ktmlm/RUC/internal/ui/output"
)

// watch runs the target once, then reruns it whenever files below the
// project root change. Failing runs are reported and the watch continues;
// only context cancellation ends it.
func (a *App) watch(ctx context.Context, target string, opts RunOptions) error {
	a.reportRun(a.runOnce(ctx, target, opts))

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	root, err := a.loader.DiscoverRoot(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to determine watch root")
	}

	// Coalesced change notifications. A rerun already pending absorbs
	// further triggers.
	runs := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(_ []string) {
		select {
		case runs <- struct{}{}:
		default:
		}
	})

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	if output.IsTerminal(a.stderr) {
		_, _ = fmt.Fprintf(a.stderr, "Watching %s for changes, press Ctrl-C to stop.\n", root)
	}

	g, ctx := errgroup.WithContext(ctx)

	// Event pump. Ends when the watcher stops.
	g.Go(func() error {
		for event := range a.watcher.Events() {
			deb.Add(event.Path)
		}
		return nil
	})

	// Rerun loop.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-runs:
				a.reportRun(a.runOnce(ctx, target, opts))
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// reportRun logs run errors the renderer did not already show.
func (a *App) reportRun(err error) {
	if err == nil || errors.Is(err, domain.ErrRunFailed) {
		return
	}
	a.logger.Error(err)
}
