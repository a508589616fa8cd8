package domain

// Manifest is an ordered list of entries loaded from one file.
type Manifest struct {
	// Path is the canonical absolute path of the manifest file.
	Path string

	// Dir is the directory every relative entry path is resolved against.
	Dir string

	Entries []Entry

	// Fingerprint identifies the bytes the manifest was loaded from.
	Fingerprint uint64
}

// RunPolicy controls how a manifest is processed.
type RunPolicy struct {
	// DryRun classifies entries without executing or updating anything.
	DryRun bool

	// FailFast skips every entry after the first failure.
	FailFast bool

	// Verbose streams command output while it is produced.
	Verbose bool
}

// RunOutcome aggregates the results of one manifest run.
type RunOutcome struct {
	// Success is true when no entry failed.
	Success bool

	// Changed is true when at least one entry got a new digest.
	Changed bool

	// Text is the re-serialized manifest.
	Text []byte

	Results []Result
}

// Failures returns the failed results.
func (o RunOutcome) Failures() []Result {
	var failed []Result
	for _, r := range o.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}
