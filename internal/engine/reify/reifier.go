// Package reify implements the entry state machine and the manifest
// orchestrator.
package reify

import (
	"context"
	"errors"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reifier brings single entries up to date.
type Reifier struct {
	digester ports.Digester
	resolver ports.PathResolver
	executor ports.Executor
}

// NewReifier creates a new Reifier.
func NewReifier(digester ports.Digester, resolver ports.PathResolver, executor ports.Executor) *Reifier {
	return &Reifier{
		digester: digester,
		resolver: resolver,
		executor: executor,
	}
}

// Reify runs the entry command when the entry is stale and computes its new
// digest. Command output is passed to sink line by line.
//
// Entry failures are reported in the result. The returned error is reserved
// for failures that invalidate the whole manifest, such as unreadable input
// files.
func (r *Reifier) Reify(ctx context.Context, entry *domain.Entry, baseDir string, sink ports.LineSink) (domain.Result, error) {
	res := domain.Result{Entry: *entry, State: domain.StateUnchecked}

	if r.gate(&res, baseDir) {
		return res, nil
	}

	fresh, err := r.fresh(ctx, &res, baseDir)
	if err != nil || res.Failed() {
		return res, err
	}
	if fresh {
		res.State = domain.StateFresh
		res.Outcome = domain.OutcomeNoop
		return res, nil
	}

	res.State = domain.StateStale

	code, err := r.executor.Execute(ctx, ports.ExecRequest{
		Cmd:           entry.Cmd,
		Dir:           baseDir,
		Files:         entry.Files,
		RequiredFiles: entry.RequiredFiles,
	}, sink)
	res.State = domain.StateExecuted

	switch {
	case err != nil:
		fail(&res, domain.FailureExecError)
		res.Err = err
		return res, nil
	case code != 0:
		fail(&res, domain.FailureExecFail)
		res.ExitCode = code
		return res, nil
	}

	digest, err := r.digester.Digest(ctx, entry, baseDir)
	if err != nil {
		if missingRequired(&res, err) {
			return res, nil
		}
		return res, err
	}

	res.State = domain.StateDone
	res.Outcome = domain.OutcomeExecSuccess
	res.Digest = digest

	return res, nil
}

// DryRun classifies the entry without executing anything. A fresh entry is
// DryOk; a stale one fails with FailureDryFail.
func (r *Reifier) DryRun(ctx context.Context, entry *domain.Entry, baseDir string) (domain.Result, error) {
	res := domain.Result{Entry: *entry, State: domain.StateUnchecked}

	if r.gate(&res, baseDir) {
		return res, nil
	}

	fresh, err := r.fresh(ctx, &res, baseDir)
	if err != nil || res.Failed() {
		return res, err
	}
	if fresh {
		res.State = domain.StateFresh
		res.Outcome = domain.OutcomeDryOk
		return res, nil
	}

	res.State = domain.StateStale
	fail(&res, domain.FailureDryFail)

	return res, nil
}

// gate fails res when a required file does not resolve. It reports whether
// the entry failed.
func (r *Reifier) gate(res *domain.Result, baseDir string) bool {
	if len(res.Entry.RequiredFiles) == 0 {
		return false
	}

	_, missing := r.resolver.Resolve(baseDir, res.Entry.RequiredFiles)
	if len(missing) == 0 {
		return false
	}

	fail(res, domain.FailureMissingRequiredFiles)
	res.Missing = missing

	return true
}

// fresh reports whether the recorded digest matches the current one. Entries
// without a recorded digest are never hashed.
func (r *Reifier) fresh(ctx context.Context, res *domain.Result, baseDir string) (bool, error) {
	if !res.Entry.HasDigest() {
		return false, nil
	}

	digest, err := r.digester.Digest(ctx, &res.Entry, baseDir)
	if err != nil {
		if missingRequired(res, err) {
			return false, nil
		}
		return false, err
	}

	return digest == res.Entry.Digest, nil
}

// missingRequired turns a digest error caused by a vanished required file
// into an entry failure.
func missingRequired(res *domain.Result, err error) bool {
	if !errors.Is(err, domain.ErrMissingRequiredFiles) {
		return false
	}
	fail(res, domain.FailureMissingRequiredFiles)
	res.Missing = missingFrom(err)
	return true
}

func fail(res *domain.Result, failure domain.Failure) {
	res.State = domain.StateFailed
	res.Outcome = domain.OutcomeFail
	res.Failure = failure
}

// missingFrom returns the paths attached to a missing required files error.
func missingFrom(err error) []string {
	for current := err; current != nil; current = errors.Unwrap(current) {
		var zErr *zerr.Error
		if !errors.As(current, &zErr) {
			return nil
		}
		if missing, ok := zErr.Metadata()[domain.MissingMetadataKey].([]string); ok {
			return missing
		}
		current = zErr
	}
	return nil
}
