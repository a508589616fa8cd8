package ports

// PathResolver canonicalizes entry paths.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve joins every relative path with baseDir and returns the canonical
	// absolute form with symlinks evaluated. Paths that do not exist are
	// returned in missing, in input order.
	Resolve(baseDir string, paths []string) (resolved, missing []string)
}
