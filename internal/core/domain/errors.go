package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when a manifest path does not exist.
	ErrManifestNotFound = zerr.New("manifest file does not exist")

	// ErrManifestMalformed is returned when a manifest is not a sequence of mappings.
	ErrManifestMalformed = zerr.New("manifest is malformed")

	// ErrMissingCmd is returned when a manifest entry has no cmd.
	ErrMissingCmd = zerr.New("entry is missing cmd")

	// ErrNoManifests is returned when discovery finds nothing to run.
	ErrNoManifests = zerr.New("no manifests found")

	// ErrInvalidMatchPattern is returned when the discovery pattern is not a valid glob.
	ErrInvalidMatchPattern = zerr.New("invalid match pattern")

	// ErrManifestModified is returned when a manifest changed on disk while it was being run.
	ErrManifestModified = zerr.New("manifest was modified during the run")

	// ErrManifestReadFailed is returned when a manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when a manifest cannot be rewritten.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrMissingRequiredFiles is returned when a required file does not resolve.
	ErrMissingRequiredFiles = zerr.New("missing required files")

	// ErrHashFailed is returned when an entry file cannot be read for hashing.
	ErrHashFailed = zerr.New("failed to hash entry files")

	// ErrExecStart is returned when the shell cannot be started.
	ErrExecStart = zerr.New("failed to start command")

	// ErrOutputStreamBroken is returned when reading command output fails.
	ErrOutputStreamBroken = zerr.New("command output stream broken")

	// ErrRunFailed is returned when at least one entry failed.
	ErrRunFailed = zerr.New("reification failed")
)

// MissingMetadataKey is the error metadata key holding the unresolved required files.
const MissingMetadataKey = "missing"
