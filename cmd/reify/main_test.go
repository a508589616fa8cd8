package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reify/internal/app"
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store    *mocks.MockManifestStore
	runner   *mocks.MockManifestRunner
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		store:  mocks.NewMockManifestStore(ctrl),
		runner: mocks.NewMockManifestRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	f.logger.EXPECT().SetDebug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	application := app.New(mocks.NewMockManifestFinder(ctrl), f.store, f.runner, f.logger, nil)
	f.provider = func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: f.logger}, nil
	}
	return f
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- cmd: 'true'\n"), 0o600))
	return path
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "reify version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_EntryFailure verifies that failed entries exit with 1 without logging again.
func TestRun_EntryFailure(t *testing.T) {
	f := newFixture(t)
	path := writeManifest(t)
	manifest := &domain.Manifest{Path: path}

	f.store.EXPECT().Load(path).Return(manifest, nil)
	f.runner.EXPECT().Run(gomock.Any(), manifest, gomock.Any()).Return(domain.RunOutcome{
		Results: []domain.Result{{Outcome: domain.OutcomeFail}},
	}, nil)
	f.logger.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{"run", path}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_FatalError verifies that manifest errors are logged and exit with 1.
func TestRun_FatalError(t *testing.T) {
	f := newFixture(t)
	path := writeManifest(t)

	f.store.EXPECT().Load(path).Return(nil, zerr.Wrap(domain.ErrManifestMalformed, "cannot load manifest"))
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrManifestMalformed)
	})

	exitCode := run(context.Background(), []string{"run", path}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_AllFresh verifies that run returns 0 when nothing failed.
func TestRun_AllFresh(t *testing.T) {
	f := newFixture(t)
	path := writeManifest(t)
	manifest := &domain.Manifest{Path: path}

	f.store.EXPECT().Load(path).Return(manifest, nil)
	f.runner.EXPECT().Run(gomock.Any(), manifest, gomock.Any()).Return(domain.RunOutcome{Success: true}, nil)

	exitCode := run(context.Background(), []string{"run", "--dry-run", path}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_ProgressOnStdout verifies that the wired reporter writes to the stdout given to run.
func TestRun_ProgressOnStdout(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	dir := t.TempDir()
	path := filepath.Join(dir, "reify.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: touch\n  cmd: 'true'\n"), 0o600))

	provider := func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", path}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "1..1\n")
	assert.Contains(t, stdout.String(), "ok 1 - touch\n")
}
