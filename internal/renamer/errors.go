// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package renamer

import (
	"errors"
	"fmt"
)

// ErrTargetExists is wrapped by RenameError when the published name is
// already taken in the inbound directory.
var ErrTargetExists = errors.New("target already exists")

// InvalidPathError reports an FTP root that has no usable inbound directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Path == "" {
		return "invalid directory: no path given"
	}
	return fmt.Sprintf("invalid directory %s: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// CopyError reports a failed archive copy.
type CopyError struct {
	Name string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy failed: %s: %v", e.Name, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// RenameError reports a failed rename in the inbound directory.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename failed: %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// ArchiveIncompleteError reports a rename withheld because the archive
// copy failed. Only produced with Options.StrictArchive.
type ArchiveIncompleteError struct {
	Name string
	Err  error
}

func (e *ArchiveIncompleteError) Error() string {
	return fmt.Sprintf("archive incomplete, not renamed: %s: %v", e.Name, e.Err)
}

func (e *ArchiveIncompleteError) Unwrap() error { return e.Err }
