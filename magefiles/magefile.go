//go:build mage

// Package main provides build targets for the pocketpal project using Mage.
//
// Usage:
//
//	mage build      Compile the pocketpal binary to bin/
//	mage test       Run all tests
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install pocketpal to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pocketpal"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pocketpal"
)

// Build compiles the pocketpal binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint over the whole module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install installs the pocketpal binary to GOPATH/bin.
func Install() error {
	return sh.RunV(binGo, "install", cmdDir)
}
