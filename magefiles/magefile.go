// Package main provides build targets for the hbnb project using Mage.
//
// Usage:
//
//	mage build          Compile hbnb binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and write coverage.out
//	mage smoke          Build and drive the console with a short script
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install hbnb to GOPATH/bin
//	mage stats          Print Go LOC
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "hbnb"
	binaryDir  = "bin"
	cmdDir     = "./cmd/hbnb"
	coverFile  = "coverage.out"
)

// Build compiles the hbnb binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test groups test targets.
type Test mg.Namespace

// All runs every package's tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs every package's tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs every package's tests and writes a coverage profile.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverFile)
}

// Smoke builds the binary and runs a create/update/show session against a
// throwaway data file.
func Smoke() error {
	mg.Deps(Build)
	dir, err := os.MkdirTemp("", "hbnb-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(binaryDir, binaryName)
	args := []string{"--config-dir", dir, "--data-file", filepath.Join(dir, "file.json")}

	id, err := console(bin, args, "create BaseModel\n")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	out, err := console(bin, args, fmt.Sprintf("update BaseModel %s name \"Betty\"\nshow BaseModel %s\n", id, id))
	if err != nil {
		return err
	}
	if !strings.Contains(out, "'name': 'Betty'") {
		return fmt.Errorf("smoke: unexpected output %q", out)
	}
	fmt.Println("smoke ok:", id)
	return nil
}

// console runs bin with script on stdin and returns its stdout.
func console(bin string, args []string, script string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(script)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", bin, err)
	}
	return out.String(), nil
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.RemoveAll(coverFile); err != nil {
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
