// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive copies original page files into the archive directory
// before they are renamed.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copy copies the file at srcPath byte for byte to dstDir/name. The data is
// written to a temporary file in dstDir and renamed into place once
// complete; an existing archive file of the same name is replaced. The
// archive file keeps the source's permission bits. On failure no partial
// file is left behind.
func Copy(srcPath, dstDir, name string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("reading source mode: %w", err)
	}

	tmpFile, err := os.CreateTemp(dstDir, ".archive-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	_, copyErr := io.Copy(tmpFile, src)
	chmodErr := tmpFile.Chmod(info.Mode().Perm())
	closeErr := tmpFile.Close()
	if copyErr != nil {
		return fmt.Errorf("writing archive copy: %w", copyErr)
	}
	if chmodErr != nil {
		return fmt.Errorf("setting archive mode: %w", chmodErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, filepath.Join(dstDir, name)); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
