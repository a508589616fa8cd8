package reify_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reify/internal/adapters/config"
	"go.trai.ch/reify/internal/adapters/fs"
	"go.trai.ch/reify/internal/adapters/shell"
	"go.trai.ch/reify/internal/adapters/tap"
	"go.trai.ch/reify/internal/adapters/telemetry"
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports/mocks"
	"go.trai.ch/reify/internal/engine/reify"
	"go.uber.org/mock/gomock"
)

type harness struct {
	orchestrator *reify.Orchestrator
	store        *fs.Store
	codec        *config.Codec
	out          *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	walker := fs.NewWalker()
	resolver := fs.NewResolver()
	codec := config.NewCodec()
	out := &bytes.Buffer{}

	r := reify.NewReifier(fs.NewDigester(resolver, walker), resolver, shell.NewExecutor(log))
	return &harness{
		orchestrator: reify.NewOrchestrator(r, codec, tap.NewReporter(out), telemetry.NewNoOpTracer()),
		store:        fs.NewStore(codec),
		codec:        codec,
		out:          out,
	}
}

func (h *harness) run(t *testing.T, path string, policy domain.RunPolicy) domain.RunOutcome {
	t.Helper()
	manifest, err := h.store.Load(path)
	require.NoError(t, err)

	outcome, err := h.orchestrator.Run(context.Background(), manifest, policy)
	require.NoError(t, err)

	if outcome.Changed && !policy.DryRun {
		require.NoError(t, h.store.Save(manifest, outcome.Text))
	}
	return outcome
}

func writeManifest(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path = filepath.Join(dir, domain.DefaultManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return dir, path
}

func sha(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func TestIntegration_ReifyThenNoop(t *testing.T) {
	h := newHarness(t)
	dir, path := writeManifest(t, "- name: echo\n  cmd: echo hello > out.txt\n  files: out.txt\n")

	first := h.run(t, path, domain.RunPolicy{})
	assert.True(t, first.Success)
	assert.True(t, first.Changed)

	content, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries, err := h.codec.Decode(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, sha("hello\n", "echo hello > out.txt"), entries[0].Digest)
	assert.Equal(t, []string{"out.txt"}, entries[0].Files)

	h.out.Reset()
	second := h.run(t, path, domain.RunPolicy{})
	assert.True(t, second.Success)
	assert.False(t, second.Changed)
	assert.Equal(t, domain.OutcomeNoop, second.Results[0].Outcome)
	assert.Contains(t, h.out.String(), "ok 1 - echo # noop")

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestIntegration_DryRunLeavesManifestUntouched(t *testing.T) {
	h := newHarness(t)
	content := "- cmd: echo hello > out.txt\n  files: out.txt\n"
	dir, path := writeManifest(t, content)

	outcome := h.run(t, path, domain.RunPolicy{DryRun: true})
	assert.False(t, outcome.Success)
	assert.False(t, outcome.Changed)
	assert.Contains(t, h.out.String(), "not ok 1 - <unnamed> # dry run")

	_, err := os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestIntegration_FailFast(t *testing.T) {
	h := newHarness(t)
	_, path := writeManifest(t, "- name: ok\n  cmd: 'true'\n- name: broken\n  cmd: exit 4\n- name: later\n  cmd: touch later.txt\n")

	outcome := h.run(t, path, domain.RunPolicy{FailFast: true})
	assert.False(t, outcome.Success)
	assert.True(t, outcome.Changed)

	report := h.out.String()
	assert.Contains(t, report, "1..3")
	assert.Contains(t, report, "ok 1 - ok\n")
	assert.Contains(t, report, "not ok 2 - broken # non-zero exit code 4")
	assert.Contains(t, report, "# + exit 4")
	assert.Contains(t, report, "ok 3 - later # SKIP (fail fast)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries, err := h.codec.Decode(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, sha("true"), entries[0].Digest)
	assert.Empty(t, entries[1].Digest)
	assert.Empty(t, entries[2].Digest)
}

func TestIntegration_RequiredFileGate(t *testing.T) {
	h := newHarness(t)
	dir, path := writeManifest(t, "- cmd: cp in.txt out.txt\n  required_files: in.txt\n  files: out.txt\n")

	outcome := h.run(t, path, domain.RunPolicy{})
	assert.False(t, outcome.Success)
	assert.Contains(t, h.out.String(), "# missing required files: in.txt")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("data"), 0o600))
	h.out.Reset()

	outcome = h.run(t, path, domain.RunPolicy{})
	assert.True(t, outcome.Success)
	assert.True(t, outcome.Changed)
	assert.Equal(t, sha("data", "data", "cp in.txt out.txt"), outcome.Results[0].Digest)
}
