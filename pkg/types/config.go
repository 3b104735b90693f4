// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Default subdirectory names under the FTP root.
const (
	DefaultInboundDir = "C To Send"
	DefaultArchiveDir = "C Sent"
)

// Viper keys for the layout settings.
const (
	KeyRoot       = "root"
	KeyInboundDir = "inbound_dir"
	KeyArchiveDir = "archive_dir"
)

// Layout describes the FTP folder a run operates on.
type Layout struct {
	// Root is the FTP folder supplied on the command line (e.g. "D:\FTP\").
	Root string `json:"root"`

	// InboundDir is the subdirectory holding source-named pages.
	InboundDir string `json:"inbound_dir"`

	// ArchiveDir is the subdirectory receiving copies of the originals.
	ArchiveDir string `json:"archive_dir"`
}

// NewSettings returns a settings registry holding the layout defaults.
func NewSettings() *viper.Viper {
	v := viper.New()
	setLayoutDefaults(v)
	return v
}

func setLayoutDefaults(v *viper.Viper) {
	v.SetDefault(KeyInboundDir, DefaultInboundDir)
	v.SetDefault(KeyArchiveDir, DefaultArchiveDir)
}

// NewLayout returns the standard layout rooted at root.
func NewLayout(root string) Layout {
	v := NewSettings()
	v.Set(KeyRoot, root)
	return LayoutFromViper(v)
}

// LayoutFromViper builds a Layout from the settings held by v. Subdirectory
// names not set on v take their defaults.
func LayoutFromViper(v *viper.Viper) Layout {
	setLayoutDefaults(v)
	return Layout{
		Root:       v.GetString(KeyRoot),
		InboundDir: v.GetString(KeyInboundDir),
		ArchiveDir: v.GetString(KeyArchiveDir),
	}
}

// InboundPath returns the full path of the inbound directory.
func (l Layout) InboundPath() string {
	return filepath.Join(l.Root, l.InboundDir)
}

// ArchivePath returns the full path of the archive directory.
func (l Layout) ArchivePath() string {
	return filepath.Join(l.Root, l.ArchiveDir)
}
