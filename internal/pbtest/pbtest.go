// Package pbtest fabricates chroot base images for tests: .cow directories,
// base tarballs and qemubuilder config files laid out the way a real
// /var/cache/pbuilder would be.
package pbtest

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// CowDir creates a .cow base directory (e.g. base-sid.cow) under dir.
func CowDir(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("cow dir: %v", err)
	}
	return path
}

// BaseFile creates an empty base tarball or qemubuilder config under dir.
func BaseFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("base file: %v", err)
	}
	return path
}

// RemoveAll wraps os.RemoveAll and fails the test on failure.
func RemoveAll(t testing.TB, path string) {
	if err := os.RemoveAll(path); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
