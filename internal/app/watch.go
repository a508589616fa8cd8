package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/reify/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// tempFilePrefix marks the files written while a manifest is rewritten.
const tempFilePrefix = ".reify-tmp-"

// Watch runs like Run, then reruns whenever a file below one of the manifest
// directories changes. Runs never overlap; changes made during a run trigger
// one more run afterwards. Watching stops when ctx is done.
func (a *App) Watch(ctx context.Context, paths []string, opts RunOptions) error {
	a.configureLogging(opts)

	manifests, err := a.resolveManifests(paths, opts.findOptions())
	if err != nil {
		return err
	}

	w, err := a.watchers()
	if err != nil {
		return zerr.Wrap(err, "failed to start watch mode")
	}

	for _, root := range watchRoots(manifests) {
		if err := w.Add(root); err != nil {
			_ = w.Stop()
			return err
		}
		a.logger.Debug("watching " + root)
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow(), func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)
	w.Start(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			if strings.HasPrefix(filepath.Base(event.Path), tempFilePrefix) {
				continue
			}
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		defer debouncer.Stop()

		a.runCycle(ctx, paths, opts)
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				a.runCycle(ctx, paths, opts)
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "watch mode failed")
	}
	return nil
}

// runCycle runs once and logs the result. Manifests are discovered again so
// new ones are picked up.
func (a *App) runCycle(ctx context.Context, paths []string, opts RunOptions) {
	err := a.resolveAndRun(ctx, paths, opts)

	switch {
	case ctx.Err() != nil:
		return
	case errors.Is(err, domain.ErrRunFailed):
		a.logger.Warn("some entries failed, waiting for changes")
	case err != nil:
		a.logger.Error(err)
	default:
		a.logger.Info("up to date, waiting for changes")
	}
}

func (a *App) resolveAndRun(ctx context.Context, paths []string, opts RunOptions) error {
	manifests, err := a.resolveManifests(paths, opts.findOptions())
	if err != nil {
		return err
	}
	return a.runManifests(ctx, manifests, opts)
}

func (a *App) debounceWindow() time.Duration {
	if a.debounce > 0 {
		return a.debounce
	}
	return watcher.DefaultDebounceWindow
}

// watchRoots returns the distinct directories holding manifests.
func watchRoots(manifests []string) []string {
	roots := make([]string, 0, len(manifests))
	for _, path := range manifests {
		dir := filepath.Dir(path)
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		roots = append(roots, dir)
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}
