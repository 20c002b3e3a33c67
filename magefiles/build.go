//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the rolodex project using Mage.
//
// Usage:
//
//	mage build       Compile the rolodex binary to bin/
//	mage test:all    Run every test
//	mage test:race   Run every test with the race detector
//	mage test:cover  Write a coverage profile to bin/coverage.out
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install rolodex to GOPATH/bin
//	mage stats       Print Go LOC and documentation word counts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "rolodex"
	binaryDir  = "bin"
	cmdDir     = "./cmd/rolodex"
	modulePath = "github.com/mesh-intelligence/rolodex"
)

// Default runs when mage is invoked without a target.
var Default = Build

// Build compiles the rolodex binary to bin/, stamping the version.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := "-X " + modulePath + "/pkg/rolodex.Version=" + version()
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// version returns ROLODEX_VERSION or, failing that, the latest git tag.
func version() string {
	if v := os.Getenv("ROLODEX_VERSION"); v != "" {
		return v
	}
	tag, err := sh.Output("git", "describe", "--tags", "--abbrev=0")
	if err != nil || tag == "" {
		return "0.1.0"
	}
	if tag[0] == 'v' {
		return tag[1:]
	}
	return tag
}
