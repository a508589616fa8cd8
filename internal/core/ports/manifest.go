package ports

import "go.trai.ch/reify/internal/core/domain"

// ManifestCodec converts between manifest documents and entries.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestCodec interface {
	// Decode parses a manifest document into its entries, in document order.
	Decode(data []byte) ([]domain.Entry, error)

	// EncodeEntry renders the canonical block of one entry. A non-empty
	// digestOverride replaces the entry's recorded digest.
	EncodeEntry(entry *domain.Entry, digestOverride string) []byte

	// Encode renders every entry in order.
	Encode(entries []domain.Entry) []byte
}

// ManifestStore loads and rewrites manifest files.
type ManifestStore interface {
	// Load reads and decodes the manifest at path.
	Load(path string) (*domain.Manifest, error)

	// Save replaces the manifest file with text. It refuses to overwrite a
	// file whose content changed since it was loaded.
	Save(manifest *domain.Manifest, text []byte) error
}

// FindOptions controls manifest discovery.
type FindOptions struct {
	// Match is a glob matched against file names.
	Match string

	// Recursive descends into subdirectories.
	Recursive bool
}

// ManifestFinder discovers manifest files.
type ManifestFinder interface {
	// Find returns the canonical paths of the manifests below root, sorted.
	Find(root string, opts FindOptions) ([]string, error)
}
