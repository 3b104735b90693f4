// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Edition is a four-letter print edition code as it appears at the start
// of a source page name.
type Edition string

const (
	EditionCongleton Edition = "Cong"
	EditionBiddulph  Edition = "Bidd"
	EditionSandbach  Edition = "Sand"
	EditionAlsager   Edition = "Alsa"
)

// Editions lists the known editions in numbering order: the edition number
// used in published names is the 1-based index into this slice.
var Editions = []Edition{
	EditionCongleton,
	EditionBiddulph,
	EditionSandbach,
	EditionAlsager,
}

// Number returns the 1-based edition number, or 0 if e is not a known edition.
func (e Edition) Number() int {
	for i, known := range Editions {
		if e == known {
			return i + 1
		}
	}
	return 0
}

// EditionByNumber returns the edition with 1-based number n.
func EditionByNumber(n int) (Edition, bool) {
	if n < 1 || n > len(Editions) {
		return "", false
	}
	return Editions[n-1], true
}

// FileStatus records what happened to one inbound directory entry.
type FileStatus string

const (
	StatusRenamed           FileStatus = "renamed"
	StatusSkipped           FileStatus = "skipped"
	StatusCopyFailed        FileStatus = "copy-failed"
	StatusRenameFailed      FileStatus = "rename-failed"
	StatusArchiveIncomplete FileStatus = "archive-incomplete"
)

// Outcome is the per-entry record of a rename run.
type Outcome struct {
	// Source is the entry name as found in the inbound directory.
	Source string `json:"source"`

	// Target is the published name; empty for skipped entries.
	Target string `json:"target,omitempty"`

	// Status summarizes the result. StatusCopyFailed means the archive copy
	// failed but the rename succeeded.
	Status FileStatus `json:"status"`

	// Err holds the copy or rename error, if any.
	Err error `json:"-"`
}
