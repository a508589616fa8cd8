package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reify/internal/core/domain"
	"go.trai.ch/reify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store loads manifests from disk and rewrites them atomically.
type Store struct {
	codec ports.ManifestCodec
}

// NewStore creates a new Store decoding manifests with codec.
func NewStore(codec ports.ManifestCodec) *Store {
	return &Store{codec: codec}
}

// Load reads and decodes the manifest at path.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	canonical, err := Canonicalize(".", path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "cannot load manifest"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	data, err := os.ReadFile(canonical) //nolint:gosec // Manifest path is user provided
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", canonical)
	}

	entries, err := s.codec.Decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot load manifest"), "path", canonical)
	}

	return &domain.Manifest{
		Path:        canonical,
		Dir:         filepath.Dir(canonical),
		Entries:     entries,
		Fingerprint: xxhash.Sum64(data),
	}, nil
}

// Save replaces the manifest file with text, keeping its permissions. It fails
// with domain.ErrManifestModified if the file no longer holds the bytes it was
// loaded from.
func (s *Store) Save(manifest *domain.Manifest, text []byte) error {
	current, err := os.ReadFile(manifest.Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", manifest.Path)
	}
	if xxhash.Sum64(current) != manifest.Fingerprint {
		return zerr.With(zerr.Wrap(domain.ErrManifestModified, "refusing to overwrite manifest"), "path", manifest.Path)
	}

	perm := iofs.FileMode(domain.FilePerm)
	if info, err := os.Stat(manifest.Path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := writeFileAtomic(manifest.Path, text, perm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", manifest.Path)
	}

	manifest.Fingerprint = xxhash.Sum64(text)
	return nil
}

// writeFileAtomic writes data to a temporary file next to dst and renames it over dst.
func writeFileAtomic(dst string, data []byte, perm iofs.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(dst), ".reify-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}() // cleanup on error

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Chmod(perm); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, dst)
}
