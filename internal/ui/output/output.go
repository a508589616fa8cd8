// Package output builds termenv outputs with the color handling shared by
// the logger and the progress reporter.
package output

import (
	"context"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NoColorEnv disables colors when set to any non-empty value.
const NoColorEnv = "NO_COLOR"

type stdoutKey struct{}

// WithStdout returns a copy of ctx that carries w as the program's standard
// output.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// StdoutFrom returns the writer set by WithStdout, or os.Stdout.
func StdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}
	return os.Stdout
}

// ColorProfile returns the color profile detected from the environment,
// or Ascii when NO_COLOR is set.
func ColorProfile() termenv.Profile {
	if os.Getenv(NoColorEnv) != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileFor returns ANSI when w is a terminal and NO_COLOR is unset,
// and Ascii otherwise. Piped output never carries escape codes.
func ColorProfileFor(w io.Writer) termenv.Profile {
	if os.Getenv(NoColorEnv) != "" || !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// New creates a termenv.Output for w using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output for w with the profile returned by profileFn.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
