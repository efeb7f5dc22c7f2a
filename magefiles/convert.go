//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Sample builds the CLI and converts the built-in sample document.
func Sample() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "sample", "--log-level", "info")
}

// Convert builds the CLI and converts every XML file under testdata/ into json/.
func Convert() error {
	mg.Deps(Build)
	files, err := filepath.Glob(filepath.Join("testdata", "*.xml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no XML files under testdata/")
	}
	args := append([]string{"convert", "--out-dir", "json"}, files...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}
