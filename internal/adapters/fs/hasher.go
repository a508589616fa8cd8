package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"slices"

	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes SHA-256 entry digests.
type Digester struct {
	resolver ports.PathResolver
	walker   *Walker
}

// NewDigester creates a new Digester.
func NewDigester(resolver ports.PathResolver, walker *Walker) *Digester {
	return &Digester{resolver: resolver, walker: walker}
}

// Digest hashes the entry's inputs followed by its command and returns the lowercase hex sum.
func (d *Digester) Digest(ctx context.Context, entry *domain.Entry, baseDir string) (string, error) {
	paths, err := d.Inputs(entry, baseDir)
	if err != nil {
		return "", err
	}

	hasher := sha256.New()
	buf := make([]byte, domain.HashBufferSize)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := hashFile(hasher, path, buf); err != nil {
			return "", err
		}
	}

	_, _ = io.WriteString(hasher, entry.Cmd)

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Inputs returns the canonical, deduplicated and sorted list of files that
// make up the digest of entry. Unresolved files are dropped; an unresolved
// required file is an error. Directories contribute every file below them.
func (d *Digester) Inputs(entry *domain.Entry, baseDir string) ([]string, error) {
	required, missing := d.resolver.Resolve(baseDir, entry.RequiredFiles)
	if len(missing) > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingRequiredFiles, "cannot digest entry"), domain.MissingMetadataKey, missing)
	}

	files, _ := d.resolver.Resolve(baseDir, entry.Files)

	paths := make([]string, 0, len(files)+len(required))
	for _, path := range slices.Concat(files, required) {
		expanded, err := d.expand(path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, expanded...)
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// expand returns path itself, or the files below it when it is a directory.
func (d *Digester) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	for file, err := range d.walker.WalkFiles(path) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
		}
		files = append(files, file)
	}
	return files, nil
}

// hashFile streams the content of path into hasher through buf.
func hashFile(hasher hash.Hash, path string, buf []byte) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from the manifest
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = hasher.Write(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
		}
	}
}
