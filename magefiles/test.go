//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs every test with the race detector. The store tests hammer the
// locked store and the sqlite backend from many goroutines.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Store runs only the store packages and their shared conformance suite.
func (Test) Store() error {
	pkgs, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var storePkgs []string
	for _, pkg := range strings.Split(pkgs, "\n") {
		if strings.HasSuffix(pkg, "/internal/contacts") || strings.HasSuffix(pkg, "/internal/sqlite") {
			storePkgs = append(storePkgs, pkg)
		}
	}
	if len(storePkgs) == 0 {
		fmt.Println("No store packages found.")
		return nil
	}
	args := append([]string{"test", "-v"}, storePkgs...)
	return sh.RunV(binGo, args...)
}

// Cover writes a coverage profile to bin/coverage.out and prints the summary.
func (Test) Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "coverage.out")
	if err := sh.RunV(binGo, "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", profile)
}
