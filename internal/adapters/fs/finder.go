package fs

import (
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestFinder = (*Finder)(nil)

// Finder discovers manifest files by name.
type Finder struct {
	walker *Walker
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// Find returns the canonical paths of the files below root matching opts.Match.
// Patterns without a slash are matched against the file name, others against
// the slash-separated path relative to root.
func (f *Finder) Find(root string, opts ports.FindOptions) ([]string, error) {
	pattern := opts.Match
	if pattern == "" {
		pattern = domain.DefaultManifestName
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidMatchPattern, "cannot discover manifests"), "pattern", pattern)
	}

	base, err := Canonicalize(".", root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve search root"), "root", root)
	}

	var files iter.Seq2[string, error]
	if opts.Recursive {
		files = f.walker.WalkFiles(base)
	} else {
		files = f.walker.ListFiles(base)
	}

	var found []string
	for path, err := range files {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to search for manifests"), "root", base)
		}

		if !matches(pattern, base, path) {
			continue
		}

		canonical, err := Canonicalize(base, path)
		if err != nil {
			continue
		}
		found = append(found, canonical)
	}

	slices.Sort(found)
	return slices.Compact(found), nil
}

func matches(pattern, base, path string) bool {
	name := filepath.Base(path)
	if strings.Contains(pattern, "/") {
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return false
		}
		name = filepath.ToSlash(rel)
	}
	return doublestar.MatchUnvalidated(pattern, name)
}
