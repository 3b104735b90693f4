//go:build mage

// Package main contains Mage build targets for chronicle-rename developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "chronicle-rename"
	cmdPkg  = "./cmd/chronicle-rename"

	sampleRoot = "ftp"
)

// samplePages are written to the sample inbound directory by Sample.
var samplePages = []string{
	"Cong2701.pdf",
	"Cong2702.pdf",
	"Bidd2701.pdf",
	"Sand2701.PDF",
	"Alsa2701.pdf",
	"notes.txt",
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample creates ftp/C To Send and ftp/C Sent with a few fake page files.
func Sample() error {
	inbound := filepath.Join(sampleRoot, "C To Send")
	for _, dir := range []string{inbound, filepath.Join(sampleRoot, "C Sent")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	for _, name := range samplePages {
		body := []byte("%PDF-1.4 sample " + name + "\n")
		if err := os.WriteFile(filepath.Join(inbound, name), body, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	fmt.Printf("Sample FTP folder ready with %d files.\n", len(samplePages))
	return nil
}

// Run builds the binary and renames the sample FTP folder.
func Run() error {
	mg.SerialDeps(Build, Sample)
	return sh.RunV(filepath.Join(binDir, binName), sampleRoot+string(filepath.Separator))
}

// Clean removes the binary and the sample FTP folder.
func Clean() error {
	for _, p := range []string{binDir, sampleRoot} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	var prod, test int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countLines counts non-blank lines in the file at path.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}
