package ports

import "go.trai.ch/reify/internal/core/domain"

// Reporter renders run progress.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Plan announces a manifest and the number of entries it holds.
	Plan(manifest string, count int)

	// Output renders one line of command output.
	Output(line string)

	// Result renders the outcome of one entry.
	Result(result domain.Result)
}
