// Package tap renders run progress in a TAP-like line protocol.
package tap

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/reify/internal/ui/output"
	"go.trai.ch/reify/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

const (
	directiveNoop     = "noop"
	directiveSkip     = "SKIP (fail fast)"
	diagnosticPrefix  = "# "
	descriptionEscape = `\#`
)

// Reporter implements ports.Reporter. Every call writes complete lines, so
// output stays readable when stdout is a pipe.
type Reporter struct {
	out *termenv.Output
	mu  sync.Mutex
}

// NewReporter creates a Reporter writing to w, or to stdout when w is nil.
// Colors are used only when w is a terminal and NO_COLOR is unset.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		out: output.NewWithProfile(w, func() termenv.Profile { return output.ColorProfileFor(w) }),
	}
}

// Plan prints the manifest header and the test plan.
func (r *Reporter) Plan(manifest string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writeLocked(r.out.String(diagnosticPrefix + manifest).Foreground(r.color(style.Iris)).String())
	r.writeLocked(fmt.Sprintf("1..%d", count))
}

// Output prints one line of command output as a diagnostic.
func (r *Reporter) Output(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diagnosticLocked(line)
}

// Result prints the test line for one entry. Failures are followed by the
// captured output tail.
func (r *Reporter) Result(result domain.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := r.out.String("ok").Foreground(r.color(style.Green)).String()
	var directive string

	switch {
	case result.Failed():
		status = r.out.String("not ok").Foreground(r.color(style.Red)).String()
		directive = result.Reason()
	case result.Outcome == domain.OutcomeSkip:
		directive = r.out.String(directiveSkip).Foreground(r.color(style.Yellow)).String()
	case result.Outcome == domain.OutcomeNoop, result.Outcome == domain.OutcomeDryOk:
		directive = directiveNoop
	}

	line := fmt.Sprintf("%s %d - %s", status, result.Index, description(result.Entry.DisplayName()))
	if directive != "" {
		line += " # " + oneLine(directive)
	}
	r.writeLocked(line)

	for _, tail := range result.Output {
		r.diagnosticLocked(tail)
	}
}

// color converts c to the closest color of the output profile.
func (r *Reporter) color(c lipgloss.Color) termenv.Color {
	return r.out.Color(string(c))
}

func (r *Reporter) diagnosticLocked(line string) {
	r.writeLocked(r.out.String(diagnosticPrefix + line).Faint().String())
}

func (r *Reporter) writeLocked(line string) {
	_, _ = r.out.WriteString(line + "\n")
}

// description escapes the TAP directive marker and keeps the name on one line.
func description(name string) string {
	return strings.ReplaceAll(oneLine(name), "#", descriptionEscape)
}

func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
