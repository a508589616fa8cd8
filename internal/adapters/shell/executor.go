// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor by running entry commands under bash.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs req.Cmd with tracing and errexit enabled. Stdout and stderr
// share one pipe so sink sees lines in the order they were written.
func (e *Executor) Execute(ctx context.Context, req ports.ExecRequest, sink ports.LineSink) (int, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return -1, fmt.Errorf("%w: %w", domain.ErrExecStart, err)
	}
	defer func() { _ = pr.Close() }()

	cmd := exec.CommandContext(ctx, domain.Shell, "-c", script(req.Cmd)) //nolint:gosec // user provided command
	cmd.Dir = req.Dir
	cmd.Env = resolveEnvironment(os.Environ(), req.Files, req.RequiredFiles)
	cmd.Stdout = pw
	cmd.Stderr = pw

	e.logger.Debug("running command in " + req.Dir)

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		return -1, zerr.With(fmt.Errorf("%w: %w", domain.ErrExecStart, err), "dir", req.Dir)
	}

	// The child holds its own copy of the write end.
	_ = pw.Close()

	streamErr := stream(pr, sink)
	if streamErr != nil {
		// Unblock a child that is still writing.
		_ = pr.Close()
	}

	waitErr := cmd.Wait()

	if streamErr != nil {
		return -1, fmt.Errorf("%w: %w", domain.ErrOutputStreamBroken, streamErr)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, zerr.Wrap(ctxErr, "command interrupted")
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() >= 0 {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.Wrap(waitErr, "command failed")
	}

	return 0, nil
}

// script prefixes cmd with the shell preamble.
func script(cmd string) string {
	return domain.ShellPreamble + "\n" + cmd
}

// stream copies r to sink line by line until EOF.
func stream(r io.Reader, sink ports.LineSink) error {
	w := &lineWriter{sink: sink}
	_, err := io.Copy(w, r)
	_ = w.Close()
	return err
}

// lineWriter buffers writes and hands complete lines to a sink.
type lineWriter struct {
	sink ports.LineSink
	buf  []byte
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a final unterminated line.
func (w *lineWriter) Close() error {
	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *lineWriter) emit(line []byte) {
	if w.sink == nil {
		return
	}
	w.sink(strings.TrimSuffix(string(line), "\r"))
}

// resolveEnvironment returns sysEnv with the entry file lists exported.
// Inherited variables of the same names are replaced.
func resolveEnvironment(sysEnv, files, requiredFiles []string) []string {
	env := make([]string, 0, len(sysEnv)+2)
	for _, kv := range sysEnv {
		k, _, ok := strings.Cut(kv, "=")
		if ok && (k == domain.FilesEnvVar || k == domain.RequiredFilesEnvVar) {
			continue
		}
		env = append(env, kv)
	}

	return append(env,
		domain.FilesEnvVar+"="+strings.Join(files, "\n"),
		domain.RequiredFilesEnvVar+"="+strings.Join(requiredFiles, "\n"),
	)
}
