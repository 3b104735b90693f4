// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chronicle-rename CLI. It renames
// the newspaper pages waiting in "<root>/C To Send" to their published
// names and archives the originals in "<root>/C Sent".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chronicle-rename/internal/renamer"
	"github.com/pdiddy/chronicle-rename/pkg/types"
)

const usageText = `Give the path to the FTP folder as an argument.
Eg.: "D:\FTP\".`

// newRootCmd builds the command. settings holds the layout; opts is passed
// through to the renamer.
func newRootCmd(settings *viper.Viper, opts renamer.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronicle-rename [ftp-root]",
		Short: "Rename incoming newspaper pages to their published names",
		Long: `chronicle-rename renames page PDFs delivered to "<ftp-root>/C To Send"
from source names such as Cong2730.pdf to published names such as
Con1Oct27P030.pdf. Each original is first copied to "<ftp-root>/C Sent".

The month code comes from today's date: a page dated earlier in the month
than today is taken to be next month's.

` + usageText,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, settings, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func runRename(cmd *cobra.Command, args []string, settings *viper.Viper, opts renamer.Options) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(w, usageText)
		return nil
	}
	fmt.Fprintln(w, "\n*** Rename ***")
	fmt.Fprintln(w)

	settings.Set(types.KeyRoot, args[0])
	layout := types.LayoutFromViper(settings)

	_, err := renamer.Run(context.Background(), layout, opts, w)
	var pathErr *renamer.InvalidPathError
	if errors.As(err, &pathErr) {
		fmt.Fprintf(w, "Invalid directory.\n%s\n", usageText)
		return nil
	}
	return err
}

func main() {
	settings := types.NewSettings()

	cmd := newRootCmd(settings, renamer.Options{})
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
