package fs

import (
	"path/filepath"

	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

var errEmptyPath = zerr.New("empty path")

// Resolver canonicalizes entry paths against a base directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve canonicalizes every path. Paths that do not exist are reported in missing.
func (r *Resolver) Resolve(baseDir string, paths []string) (resolved, missing []string) {
	for _, p := range paths {
		canonical, err := Canonicalize(baseDir, p)
		if err != nil {
			missing = append(missing, p)
			continue
		}
		resolved = append(resolved, canonical)
	}
	return resolved, missing
}

// Canonicalize returns the absolute, symlink-free form of path. Relative paths
// are taken relative to baseDir. The path must exist.
func Canonicalize(baseDir, path string) (string, error) {
	if path == "" {
		return "", errEmptyPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
