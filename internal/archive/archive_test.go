// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	content := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{0x00, 0xff, 0x0a, 0x0d}, 4096)...)
	srcPath := filepath.Join(srcDir, "Cong2730.pdf")
	require.NoError(t, os.WriteFile(srcPath, content, 0o644))

	require.NoError(t, Copy(srcPath, dstDir, "Cong2730.pdf"))

	got, err := os.ReadFile(filepath.Join(dstDir, "Cong2730.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Source is untouched.
	orig, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	assert.Equal(t, content, orig)

	assertSameMode(t, srcPath, filepath.Join(dstDir, "Cong2730.pdf"))

	assertNoTempFiles(t, dstDir)
}

func TestCopyKeepsPermissions(t *testing.T) {
	for _, mode := range []os.FileMode{0o644, 0o640, 0o600, 0o444} {
		t.Run(mode.String(), func(t *testing.T) {
			srcDir := t.TempDir()
			dstDir := t.TempDir()
			srcPath := filepath.Join(srcDir, "Sand1412.PDF")
			require.NoError(t, os.WriteFile(srcPath, []byte("%PDF"), 0o600))
			// Chmod after writing so the umask does not mask the bits.
			require.NoError(t, os.Chmod(srcPath, mode))

			require.NoError(t, Copy(srcPath, dstDir, "Sand1412.PDF"))

			dstPath := filepath.Join(dstDir, "Sand1412.PDF")
			assertSameMode(t, srcPath, dstPath)
			info, err := os.Stat(dstPath)
			require.NoError(t, err)
			assert.Equal(t, mode, info.Mode().Perm())
		})
	}
}

func TestCopyReplacesExisting(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(srcDir, "Bidd0105.pdf")
	require.NoError(t, os.WriteFile(srcPath, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "Bidd0105.pdf"), []byte("old and longer"), 0o644))

	require.NoError(t, Copy(srcPath, dstDir, "Bidd0105.pdf"))

	got, err := os.ReadFile(filepath.Join(dstDir, "Bidd0105.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyErrors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) (srcPath, dstDir string)
		errMsg string
	}{
		{
			name: "missing source",
			setup: func(t *testing.T) (string, string) {
				return filepath.Join(t.TempDir(), "Cong0101.pdf"), t.TempDir()
			},
			errMsg: "opening source",
		},
		{
			name: "missing archive directory",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				src := filepath.Join(dir, "Cong0101.pdf")
				require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))
				return src, filepath.Join(dir, "C Sent")
			},
			errMsg: "creating temp file",
		},
		{
			name: "source is a directory",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				src := filepath.Join(dir, "Cong0101.pdf")
				require.NoError(t, os.Mkdir(src, 0o755))
				dst := filepath.Join(dir, "C Sent")
				require.NoError(t, os.Mkdir(dst, 0o755))
				return src, dst
			},
			errMsg: "writing archive copy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := tt.setup(t)
			err := Copy(src, dst, filepath.Base(src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			if _, statErr := os.Stat(dst); statErr == nil {
				assertNoTempFiles(t, dst)
			}
		})
	}
}

func assertSameMode(t *testing.T, srcPath, dstPath string) {
	t.Helper()
	srcInfo, err := os.Stat(srcPath)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dstPath)
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm(),
		"archive mode %v, source mode %v", dstInfo.Mode(), srcInfo.Mode())
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".archive-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
