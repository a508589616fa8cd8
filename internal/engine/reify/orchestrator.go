package reify

import (
	"context"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Span names and attribute keys.
const (
	spanManifest = "reify.manifest"
	spanEntry    = "reify.entry"

	attrManifestPath    = "manifest.path"
	attrManifestEntries = "manifest.entries"
	attrManifestChanged = "manifest.changed"
	attrDryRun          = "run.dry_run"
	attrEntryIndex      = "entry.index"
	attrEntryName       = "entry.name"
	attrEntryOutcome    = "entry.outcome"
)

var _ ports.ManifestRunner = (*Orchestrator)(nil)

// Orchestrator runs every entry of a manifest in order and re-serializes it.
type Orchestrator struct {
	reifier  *Reifier
	codec    ports.ManifestCodec
	reporter ports.Reporter
	tracer   ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	reifier *Reifier,
	codec ports.ManifestCodec,
	reporter ports.Reporter,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		reifier:  reifier,
		codec:    codec,
		reporter: reporter,
		tracer:   tracer,
	}
}

// Run processes the entries of manifest under policy. Relative entry paths
// resolve against manifest.Dir.
//
// Every entry is reported as soon as it finishes. The outcome carries the
// re-serialized manifest, in which only successfully executed entries have a
// new digest. An error aborts the manifest: nothing must be written back.
func (o *Orchestrator) Run(ctx context.Context, manifest *domain.Manifest, policy domain.RunPolicy) (domain.RunOutcome, error) {
	ctx, span := o.tracer.Start(ctx, spanManifest)
	defer span.End()

	span.SetAttribute(attrManifestPath, manifest.Path)
	span.SetAttribute(attrManifestEntries, len(manifest.Entries))
	span.SetAttribute(attrDryRun, policy.DryRun)

	o.reporter.Plan(manifest.Path, len(manifest.Entries))

	outcome := domain.RunOutcome{
		Success: true,
		Results: make([]domain.Result, 0, len(manifest.Entries)),
	}

	for i := range manifest.Entries {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return outcome, zerr.With(zerr.Wrap(err, "run interrupted"), "manifest", manifest.Path)
		}

		var res domain.Result
		if !outcome.Success && policy.FailFast {
			res = domain.Result{
				Entry:   manifest.Entries[i],
				State:   domain.StateSkipped,
				Outcome: domain.OutcomeSkip,
			}
		} else {
			var err error
			res, err = o.runEntry(ctx, &manifest.Entries[i], i+1, manifest.Dir, policy)
			if err != nil {
				span.RecordError(err)
				return outcome, zerr.With(
					zerr.With(zerr.Wrap(err, "cannot reify entry"), "entry", i+1),
					"manifest", manifest.Path,
				)
			}
		}
		res.Index = i + 1

		if res.Failed() {
			outcome.Success = false
		}
		if res.Changed() {
			outcome.Changed = true
		}

		o.reporter.Result(res)
		outcome.Results = append(outcome.Results, res)
	}

	entries := make([]domain.Entry, len(outcome.Results))
	for i, res := range outcome.Results {
		entries[i] = res.Serialized()
	}
	outcome.Text = o.codec.Encode(entries)

	span.SetAttribute(attrManifestChanged, outcome.Changed)
	if !outcome.Success {
		span.RecordError(domain.ErrRunFailed)
	}

	return outcome, nil
}

func (o *Orchestrator) runEntry(
	ctx context.Context,
	entry *domain.Entry,
	index int,
	baseDir string,
	policy domain.RunPolicy,
) (domain.Result, error) {
	ctx, span := o.tracer.Start(ctx, spanEntry)
	defer span.End()

	span.SetAttribute(attrEntryIndex, index)
	span.SetAttribute(attrEntryName, entry.DisplayName())

	var (
		res domain.Result
		err error
	)

	if policy.DryRun {
		res, err = o.reifier.DryRun(ctx, entry, baseDir)
	} else {
		tail := newTail(domain.OutputTailLines)
		sink := tail.Add
		if policy.Verbose {
			sink = o.reporter.Output
		}

		res, err = o.reifier.Reify(ctx, entry, baseDir, sink)
		if res.Failed() && !policy.Verbose {
			res.Output = tail.Lines()
		}
	}

	if err != nil {
		span.RecordError(err)
		return res, err
	}

	span.SetAttribute(attrEntryOutcome, string(res.Outcome))
	if res.Failed() {
		span.RecordError(zerr.New(res.Reason()))
	}

	return res, nil
}
