// Package ports defines the core interfaces for the application.
package ports

import "context"

// LineSink receives command output one line at a time, without the line terminator.
type LineSink func(line string)

// ExecRequest describes one command execution.
type ExecRequest struct {
	// Cmd is the script handed to the shell.
	Cmd string

	// Dir is the working directory of the shell.
	Dir string

	// Files is exported to the script, newline-joined.
	Files []string

	// RequiredFiles is exported to the script, newline-joined.
	RequiredFiles []string
}

// Executor defines the interface for running entry commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the request and streams its merged stdout and stderr to sink
	// line by line while the command runs.
	//
	// It returns the exit code of the command. An error is returned only when the
	// command could not be started or its output could not be read; in that case
	// the exit code is meaningless.
	Execute(ctx context.Context, req ExecRequest, sink LineSink) (int, error)
}
