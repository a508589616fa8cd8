// Package app implements the application layer for reify.
package app

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"strconv"
	"time"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	finder   ports.ManifestFinder
	store    ports.ManifestStore
	runner   ports.ManifestRunner
	logger   ports.Logger
	watchers ports.WatcherFactory
	debounce time.Duration
}

// New creates a new App instance.
func New(
	finder ports.ManifestFinder,
	store ports.ManifestStore,
	runner ports.ManifestRunner,
	log ports.Logger,
	watchers ports.WatcherFactory,
) *App {
	return &App{
		finder:   finder,
		store:    store,
		runner:   runner,
		logger:   log,
		watchers: watchers,
	}
}

// WithDebounceWindow sets how long watch mode waits for file events to settle
// before it reruns.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounce = window
	return a
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	DryRun    bool
	FailFast  bool
	Verbose   bool
	Recursive bool
	Match     string
	Debug     bool
	JSONLog   bool
}

func (o RunOptions) policy() domain.RunPolicy {
	return domain.RunPolicy{
		DryRun:   o.DryRun,
		FailFast: o.FailFast,
		Verbose:  o.Verbose,
	}
}

func (o RunOptions) findOptions() ports.FindOptions {
	return ports.FindOptions{
		Match:     o.Match,
		Recursive: o.Recursive,
	}
}

// Run reifies every manifest named by paths. Directories are searched for
// manifests; no paths means the current directory.
//
// Manifests are processed in order. A manifest is rewritten only when an
// entry got a new digest and this is not a dry run. Entry failures are
// collected and returned joined with domain.ErrRunFailed; any other error
// aborts the run.
func (a *App) Run(ctx context.Context, paths []string, opts RunOptions) error {
	a.configureLogging(opts)

	manifests, err := a.resolveManifests(paths, opts.findOptions())
	if err != nil {
		return err
	}

	return a.runManifests(ctx, manifests, opts)
}

func (a *App) configureLogging(opts RunOptions) {
	a.logger.SetJSON(opts.JSONLog)
	a.logger.SetDebug(opts.Debug)
}

func (a *App) runManifests(ctx context.Context, manifests []string, opts RunOptions) error {
	policy := opts.policy()
	seen := make(map[string]bool, len(manifests))

	var failures []error
	for _, path := range manifests {
		manifest, err := a.store.Load(path)
		if err != nil {
			return err
		}
		if seen[manifest.Path] {
			continue
		}
		seen[manifest.Path] = true

		outcome, err := a.runner.Run(ctx, manifest, policy)
		if err != nil {
			return err
		}

		if outcome.Changed && !policy.DryRun {
			if err := a.store.Save(manifest, outcome.Text); err != nil {
				return err
			}
			a.logger.Debug("updated " + manifest.Path)
		}

		if !outcome.Success {
			failures = append(failures, zerr.With(
				zerr.New(strconv.Itoa(len(outcome.Failures()))+" entries failed"),
				"manifest", manifest.Path,
			))
		}
	}

	if len(failures) > 0 {
		return errors.Join(append([]error{domain.ErrRunFailed}, failures...)...)
	}
	return nil
}

// resolveManifests expands paths into manifest files. Duplicates are removed
// after loading, once paths are canonical.
func (a *App) resolveManifests(paths []string, opts ports.FindOptions) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var manifests []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "cannot resolve manifest"), "path", path)
			}
			return nil, zerr.With(zerr.Wrap(err, "cannot resolve manifest"), "path", path)
		}

		if !info.IsDir() {
			manifests = append(manifests, path)
			continue
		}

		found, err := a.finder.Find(path, opts)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, found...)
	}

	if len(manifests) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoManifests, "nothing to reify"), "paths", paths)
	}

	return manifests, nil
}
