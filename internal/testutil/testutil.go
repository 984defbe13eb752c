// Package testutil provides test helpers and fixtures for cachehound tests.
// All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TestFixture holds paths to test directories and files
type TestFixture struct {
	T       *testing.T
	RootDir string // Root temp directory (auto-cleaned)

	// Standard test directories
	CacheDir string
	TmpDir   string
	LogsDir  string
	DocsDir  string
}

// NewFixture creates a new test fixture with standard directory structure
func NewFixture(t *testing.T) *TestFixture {
	t.Helper()

	root := t.TempDir()

	f := &TestFixture{
		T:        t,
		RootDir:  root,
		CacheDir: filepath.Join(root, "cache"),
		TmpDir:   filepath.Join(root, "tmp"),
		LogsDir:  filepath.Join(root, "logs"),
		DocsDir:  filepath.Join(root, "docs"),
	}

	for _, dir := range []string{f.CacheDir, f.TmpDir, f.LogsDir, f.DocsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	return f
}

// =============================================================================
// File Creation Helpers
// =============================================================================

// CreateFile creates a file with specified content and returns its path
func (f *TestFixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateFileSized creates a file filled with size zero bytes
func (f *TestFixture) CreateFileSized(relPath string, size int) string {
	f.T.Helper()
	return f.CreateFile(relPath, make([]byte, size))
}

// CreateDir creates a directory and returns its path
func (f *TestFixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}

	return fullPath
}

// =============================================================================
// Symlink Helpers
// =============================================================================

// CreateSymlink creates a symbolic link at linkPath pointing to target
func (f *TestFixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullLinkPath := filepath.Join(f.RootDir, linkPath)
	dir := filepath.Dir(fullLinkPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.Symlink(target, fullLinkPath); err != nil {
		f.T.Fatalf("failed to create symlink %s -> %s: %v", fullLinkPath, target, err)
	}

	return fullLinkPath
}

// CreateBrokenSymlink creates a symlink pointing to a non-existent target
func (f *TestFixture) CreateBrokenSymlink(linkPath string) string {
	f.T.Helper()
	return f.CreateSymlink("/nonexistent/target/"+randomString(8), linkPath)
}

// CreateDirLoop creates a directory containing a symlink back to one of its
// ancestors, forming a traversal cycle. It returns the directory and the
// looping link.
func (f *TestFixture) CreateDirLoop(relPath string) (string, string) {
	f.T.Helper()

	dir := f.CreateDir(filepath.Join(relPath, "nested"))
	link := filepath.Join(dir, "back")
	if err := os.Symlink(filepath.Join(f.RootDir, relPath), link); err != nil {
		f.T.Fatalf("failed to create loop symlink %s: %v", link, err)
	}

	return f.Path(relPath), link
}

// =============================================================================
// Permission Helpers
// =============================================================================

// CreateReadOnlyDir creates a read-only directory (files inside can't be
// deleted) holding one trapped file, and returns both paths
func (f *TestFixture) CreateReadOnlyDir(relPath, fileName string) (string, string) {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	trapped := f.CreateFile(filepath.Join(relPath, fileName), []byte("trapped"))

	if err := os.Chmod(dirPath, 0555); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	// Restore permissions so TempDir cleanup works
	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath, trapped
}

// CreateUnreadableDir creates a directory that cannot be listed, holding one
// hidden file
func (f *TestFixture) CreateUnreadableDir(relPath string) string {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	f.CreateFile(filepath.Join(relPath, "hidden.cache"), []byte("x"))

	if err := os.Chmod(dirPath, 0000); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath
}

// =============================================================================
// Path Helpers
// =============================================================================

// Path returns the full path for a relative path within the fixture
func (f *TestFixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// =============================================================================
// Assertion Helpers
// =============================================================================

// FileExists checks if a file exists
func (f *TestFixture) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AssertFileExists fails the test if the file doesn't exist
func (f *TestFixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists
func (f *TestFixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// =============================================================================
// Utility Functions
// =============================================================================

// ListFiles returns the sorted paths of all regular files under path,
// ignoring unreadable entries
func ListFiles(path string) []string {
	var files []string
	filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	sort.Strings(files)
	return files
}

// CountFiles returns the number of regular files under path
func CountFiles(path string) int {
	return len(ListFiles(path))
}

// IsRoot returns true if running as root
func IsRoot() bool {
	return os.Geteuid() == 0
}

// SkipIfRoot skips the test if running as root (permission checks don't bite)
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if IsRoot() {
		t.Skip("skipping test when running as root")
	}
}

// randomString generates a random hex string of specified length
func randomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return fmt.Sprintf("%x", b)[:length]
}
