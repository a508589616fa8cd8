package tap_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/reify/internal/adapters/tap"
	"go.trai.ch/reify/internal/core/domain"
)

func TestReporter_Run(t *testing.T) {
	var buf bytes.Buffer
	r := tap.NewReporter(&buf)

	r.Plan("/work/reify.yaml", 5)
	r.Result(domain.Result{
		Index:   1,
		Entry:   domain.Entry{Name: "build"},
		Outcome: domain.OutcomeExecSuccess,
	})
	r.Result(domain.Result{
		Index:   2,
		Entry:   domain.Entry{Name: "lint"},
		Outcome: domain.OutcomeNoop,
	})
	r.Output("streamed line")
	r.Result(domain.Result{
		Index:    3,
		Entry:    domain.Entry{Name: "test"},
		Outcome:  domain.OutcomeFail,
		Failure:  domain.FailureExecFail,
		ExitCode: 2,
		Output:   []string{"+ go test", "FAIL"},
	})
	r.Result(domain.Result{
		Index:   4,
		Outcome: domain.OutcomeSkip,
	})
	r.Result(domain.Result{
		Index:   5,
		Entry:   domain.Entry{Name: "gen #1"},
		Outcome: domain.OutcomeFail,
		Failure: domain.FailureMissingRequiredFiles,
		Missing: []string{"a.txt", "b.txt"},
	})

	g := goldie.New(t)
	g.Assert(t, "run", buf.Bytes())
}

func TestReporter_DryRun(t *testing.T) {
	var buf bytes.Buffer
	r := tap.NewReporter(&buf)

	r.Plan("reify.yaml", 2)
	r.Result(domain.Result{
		Index:   1,
		Entry:   domain.Entry{Name: "fresh"},
		Outcome: domain.OutcomeDryOk,
	})
	r.Result(domain.Result{
		Index:   2,
		Entry:   domain.Entry{Name: "stale"},
		Outcome: domain.OutcomeFail,
		Failure: domain.FailureDryFail,
	})

	g := goldie.New(t)
	g.Assert(t, "dry_run", buf.Bytes())
}

func TestReporter_ExecError(t *testing.T) {
	var buf bytes.Buffer
	r := tap.NewReporter(&buf)

	r.Result(domain.Result{
		Index:   1,
		Entry:   domain.Entry{Name: "x"},
		Outcome: domain.OutcomeFail,
		Failure: domain.FailureExecError,
		Err:     errors.New("command output stream broken:\nread failed"),
	})

	assert.Equal(t, "not ok 1 - x # command output stream broken: read failed\n", buf.String())
}

func TestReporter_NoColorWhenPiped(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	r := tap.NewReporter(&buf)
	r.Result(domain.Result{Index: 1, Entry: domain.Entry{Name: "a"}, Outcome: domain.OutcomeExecSuccess})

	assert.Equal(t, "ok 1 - a\n", buf.String())
}

func TestNewReporter_NilWriter(t *testing.T) {
	assert.NotNil(t, tap.NewReporter(nil))
}
