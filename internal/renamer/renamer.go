// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package renamer renames a batch of source-named newspaper pages in the
// inbound directory to their published names, archiving each original
// first.
//
// The publication month is derived once per run from the first matching
// entry and applied to every page. Entries are visited in os.ReadDir order
// (sorted by name), so "first" is the lexicographically smallest matching
// name; a run is assumed to hold pages for a single publication date.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/chronicle-rename/internal/archive"
	"github.com/pdiddy/chronicle-rename/internal/pagename"
	"github.com/pdiddy/chronicle-rename/pkg/types"
)

// Options adjusts a run. The zero value is the command-line behavior.
type Options struct {
	// Now returns the current time used for the month code. Defaults to time.Now.
	Now func() time.Time

	// StrictArchive withholds the rename of a page whose archive copy
	// failed. By default the rename goes ahead.
	StrictArchive bool
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// RunResult holds the outcome of a rename run.
type RunResult struct {
	// Month and Day are the publication month code and the day of the
	// first matching page. Both are empty when nothing matched.
	Month string
	Day   string

	Renamed      int
	Skipped      int
	CopyFailed   int
	RenameFailed int
	Withheld     int

	Outcomes []types.Outcome
	Elapsed  time.Duration
}

// Total returns the number of inbound entries visited.
func (r RunResult) Total() int {
	return len(r.Outcomes)
}

// HasFailures reports whether any copy or rename failed.
func (r RunResult) HasFailures() bool {
	return r.CopyFailed > 0 || r.RenameFailed > 0
}

// Run processes every entry of the inbound directory of layout, printing
// one line per entry to w. Only an unusable inbound directory stops the
// run before it starts; per-file failures are reported and counted.
// Cancelling ctx stops the run between entries.
func Run(ctx context.Context, layout types.Layout, opts Options, w io.Writer) (RunResult, error) {
	start := time.Now()
	inbound := layout.InboundPath()

	if layout.Root == "" {
		return RunResult{}, &InvalidPathError{}
	}
	info, err := os.Stat(inbound)
	if err != nil {
		return RunResult{}, &InvalidPathError{Path: inbound, Err: err}
	}
	if !info.IsDir() {
		return RunResult{}, &InvalidPathError{Path: inbound, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(inbound)
	if err != nil {
		return RunResult{}, &InvalidPathError{Path: inbound, Err: err}
	}

	var result RunResult
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		src, err := pagename.ParseSource(entry.Name())
		if err != nil || entry.IsDir() {
			fmt.Fprintf(w, "Skipping unrecognised file: %s\n", entry.Name())
			result.Skipped++
			result.Outcomes = append(result.Outcomes, types.Outcome{
				Source: entry.Name(),
				Status: types.StatusSkipped,
			})
			continue
		}

		if result.Month == "" {
			result.Day = src.Day
			result.Month = pagename.PublicationMonth(src.DayOfMonth(), opts.now())
			fmt.Fprintf(w, "Date of publication is: %s %s.\n\n", result.Day, result.Month)
		}

		out := renamePage(layout, src, result.Month, opts, w)
		switch out.Status {
		case types.StatusRenamed:
			result.Renamed++
		case types.StatusCopyFailed:
			result.Renamed++
			result.CopyFailed++
		case types.StatusRenameFailed:
			result.RenameFailed++
			var ce *CopyError
			if errors.As(out.Err, &ce) {
				result.CopyFailed++
			}
		case types.StatusArchiveIncomplete:
			result.CopyFailed++
			result.Withheld++
		}
		result.Outcomes = append(result.Outcomes, out)
	}

	result.Elapsed = time.Since(start)
	fmt.Fprintf(w, "Execution time: %.3f\n", result.Elapsed.Seconds())
	fmt.Fprintf(w, "renamed: %d, skipped: %d, copy failed: %d, rename failed: %d\n",
		result.Renamed, result.Skipped, result.CopyFailed, result.RenameFailed)
	return result, nil
}

// renamePage archives and renames a single matched page.
func renamePage(layout types.Layout, src pagename.Source, month string, opts Options, w io.Writer) types.Outcome {
	target := pagename.Transform(src, month).String()
	out := types.Outcome{Source: src.Name, Target: target}
	srcPath := filepath.Join(layout.InboundPath(), src.Name)

	var copyErr error
	if err := archive.Copy(srcPath, layout.ArchivePath(), src.Name); err != nil {
		copyErr = &CopyError{Name: src.Name, Err: err}
		fmt.Fprintln(w, copyErr)
		if opts.StrictArchive {
			out.Status = types.StatusArchiveIncomplete
			out.Err = &ArchiveIncompleteError{Name: src.Name, Err: err}
			fmt.Fprintln(w, out.Err)
			return out
		}
	}

	if err := renameFile(srcPath, filepath.Join(layout.InboundPath(), target)); err != nil {
		renameErr := &RenameError{From: src.Name, To: target, Err: err}
		fmt.Fprintln(w, renameErr)
		out.Status = types.StatusRenameFailed
		out.Err = errors.Join(copyErr, renameErr)
		return out
	}

	fmt.Fprintf(w, "%s created.\n", target)
	out.Status = types.StatusRenamed
	if copyErr != nil {
		out.Status = types.StatusCopyFailed
		out.Err = copyErr
	}
	return out
}

// renameFile moves from to to, refusing to replace an existing file.
func renameFile(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		return ErrTargetExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking target: %w", err)
	}
	return os.Rename(from, to)
}
