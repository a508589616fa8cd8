// Package domain holds the core types of the reification engine.
package domain

import "slices"

// UnnamedEntry is reported in place of the name of an entry that has none.
const UnnamedEntry = "<unnamed>"

// Entry is one manifest record: a shell command together with the files it
// consumes and produces, and the digest recorded after its last successful run.
type Entry struct {
	// Name is an optional label used for reporting only.
	Name string

	// Cmd is the shell script. It is part of the digest.
	Cmd string

	// Files may be absent before the first run.
	Files []string

	// RequiredFiles must exist before the entry is hashed or executed.
	RequiredFiles []string

	// Digest is the lowercase hex digest from the last successful run.
	// Empty means the entry was never reified.
	Digest string
}

// DisplayName returns the entry name, or UnnamedEntry.
func (e Entry) DisplayName() string {
	if e.Name == "" {
		return UnnamedEntry
	}
	return e.Name
}

// HasDigest reports whether a digest was recorded for the entry.
func (e Entry) HasDigest() bool {
	return e.Digest != ""
}

// WithDigest returns a copy of the entry carrying digest d.
func (e Entry) WithDigest(d string) Entry {
	return Entry{
		Name:          e.Name,
		Cmd:           e.Cmd,
		Files:         slices.Clone(e.Files),
		RequiredFiles: slices.Clone(e.RequiredFiles),
		Digest:        d,
	}
}
