package ports

import (
	"context"

	"go.trai.ch/reify/internal/core/domain"
)

// Digester computes the staleness fingerprint of an entry.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Digest hashes the contents of the entry's resolved files, in sorted path
	// order, followed by the entry's command. Relative paths are resolved
	// against baseDir.
	//
	// It returns domain.ErrMissingRequiredFiles if a required file does not
	// resolve. Unresolved files are skipped.
	Digest(ctx context.Context, entry *domain.Entry, baseDir string) (string, error)
}
