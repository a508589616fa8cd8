package domain

import (
	"fmt"
	"strings"
)

// State is the position of an entry in the reification state machine.
type State string

const (
	// StateUnchecked is the initial state of every entry.
	StateUnchecked State = "unchecked"
	// StateFresh means the current digest matches the recorded one.
	StateFresh State = "fresh"
	// StateStale means no digest was recorded or it no longer matches.
	StateStale State = "stale"
	// StateExecuted means the command ran.
	StateExecuted State = "executed"
	// StateDone means the command succeeded and a new digest was computed.
	StateDone State = "done"
	// StateFailed means the entry could not be brought up to date.
	StateFailed State = "failed"
	// StateSkipped means the entry was not evaluated because of fail-fast.
	StateSkipped State = "skipped"
)

// Outcome is what a single reify or dry run produced.
type Outcome string

const (
	// OutcomeExecSuccess means the command ran and a new digest was recorded.
	OutcomeExecSuccess Outcome = "exec_success"
	// OutcomeNoop means the entry was fresh and nothing ran.
	OutcomeNoop Outcome = "noop"
	// OutcomeDryOk means a dry run found the entry fresh.
	OutcomeDryOk Outcome = "dry_ok"
	// OutcomeFail means the entry failed, see Failure.
	OutcomeFail Outcome = "fail"
	// OutcomeSkip means the entry was skipped by fail-fast.
	OutcomeSkip Outcome = "skip"
)

// Failure classifies a failed entry.
type Failure string

const (
	// FailureNone is the zero value for results that did not fail.
	FailureNone Failure = ""
	// FailureMissingRequiredFiles means a required file did not resolve.
	// Nothing was hashed or executed.
	FailureMissingRequiredFiles Failure = "missing_required_files"
	// FailureExecFail means the command exited with a non-zero code.
	FailureExecFail Failure = "exec_fail"
	// FailureExecError means the shell could not be started or its output
	// stream broke. The exit code is unknown.
	FailureExecError Failure = "exec_error"
	// FailureDryFail means a dry run found the entry stale.
	FailureDryFail Failure = "dry_fail"
)

// Result is the outcome of evaluating one entry.
type Result struct {
	Entry   Entry
	State   State
	Outcome Outcome
	Failure Failure

	// Index is the 1-based position of the entry in its manifest.
	Index int

	// Digest is the digest computed after a successful execution.
	Digest string

	// ExitCode is set for FailureExecFail.
	ExitCode int

	// Missing lists the required files that did not resolve.
	Missing []string

	// Err is set for FailureExecError.
	Err error

	// Output holds the last lines of command output when it was not streamed.
	Output []string
}

// Failed reports whether the result counts against the manifest.
func (r Result) Failed() bool {
	return r.Outcome == OutcomeFail
}

// Changed reports whether the entry got a digest different from the recorded one.
func (r Result) Changed() bool {
	return r.Outcome == OutcomeExecSuccess && r.Digest != r.Entry.Digest
}

// Reason returns the human readable failure text, empty when the result did not fail.
func (r Result) Reason() string {
	switch r.Failure {
	case FailureMissingRequiredFiles:
		if len(r.Missing) == 0 {
			return "missing required files"
		}
		return "missing required files: " + strings.Join(r.Missing, ", ")
	case FailureExecFail:
		return fmt.Sprintf("non-zero exit code %d", r.ExitCode)
	case FailureExecError:
		if r.Err == nil {
			return "command could not be executed"
		}
		return r.Err.Error()
	case FailureDryFail:
		return "dry run"
	default:
		return ""
	}
}

// Serialized returns the entry as it must be written back to the manifest.
func (r Result) Serialized() Entry {
	if r.Outcome == OutcomeExecSuccess {
		return r.Entry.WithDigest(r.Digest)
	}
	return r.Entry
}
