package ports

import (
	"context"

	"go.trai.ch/reify/internal/core/domain"
)

// ManifestRunner brings every entry of a manifest up to date.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ManifestRunner interface {
	// Run processes the entries of manifest under policy. The outcome carries
	// the re-serialized manifest; writing it back is left to the caller.
	Run(ctx context.Context, manifest *domain.Manifest, policy domain.RunPolicy) (domain.RunOutcome, error)
}
