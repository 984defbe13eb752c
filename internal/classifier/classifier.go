// Package classifier decides whether a path looks like a disposable cache
// artifact and which category it belongs to. All checks are pure string
// predicates; no file content is ever read.
package classifier

import (
	"path/filepath"
	"strings"
)

// Category buckets every detected cache file into one of seven fixed groups
type Category int

const (
	CategoryBrowser Category = iota
	CategorySystem
	CategoryApplication
	CategoryLog
	CategoryTemporary
	CategoryBackup
	CategoryOther
)

// String returns the display name of the category
func (c Category) String() string {
	switch c {
	case CategoryBrowser:
		return "Browser"
	case CategorySystem:
		return "System"
	case CategoryApplication:
		return "Application"
	case CategoryLog:
		return "Log"
	case CategoryTemporary:
		return "Temporary"
	case CategoryBackup:
		return "Backup"
	case CategoryOther:
		return "Other"
	default:
		return "Other"
	}
}

// Extensions that mark a file as a cache artifact regardless of location.
var cacheExtensions = []string{
	".cache", ".tmp", ".temp", ".swp", ".swo", ".bak",
	".log", ".old", ".backup", ".crdownload", ".part",
}

// Directory names whose immediate children are treated as cache files.
var cacheDirNames = []string{
	"cache", "caches", ".cache", "temp", ".temp", "tmp", ".tmp",
	"logs", ".logs", "backup", ".backup", "old", ".old",
}

// Substrings in a file name that mark it as a cache artifact.
var cacheNamePatterns = []string{
	"cache", "temp", "tmp", "log", "backup", "old", ".swp", ".swo",
	"crdownload", "part", "~$", ".ds_store",
}

// classifyRules are evaluated top to bottom; the first match wins. The order
// is a contract: a path matching both a Log and a Temporary pattern is Log.
var classifyRules = []struct {
	category Category
	matches  func(name, path string) bool
}{
	{CategoryBrowser, pathContainsAny("chrome", "firefox", "edge", "safari", "browser", "mozilla")},
	{CategoryLog, func(name, path string) bool {
		return strings.HasSuffix(name, ".log") || strings.Contains(path, "log")
	}},
	{CategoryTemporary, nameOrPathContainsAny(".tmp", ".temp", ".swp", ".swo", ".crdownload", ".part", "tmp", "temp")},
	{CategoryBackup, nameOrPathContainsAny(".bak", ".backup", ".old", "backup")},
	{CategorySystem, pathContainsAny("system", ".cache", "cache")},
	{CategoryApplication, pathContainsAny("app", "application", ".app")},
}

// IsCacheFile reports whether path is heuristically a cache file. It matches
// by extension, by the immediate parent directory name, or by substrings of
// the file name, all case-insensitively. Paths with no extractable file name
// or parent directory name are never cache files.
func IsCacheFile(path string) bool {
	fileName := baseName(path)
	if fileName == "" {
		return false
	}
	parent := baseName(filepath.Dir(path))
	if parent == "" {
		return false
	}

	fileName = strings.ToLower(fileName)
	parent = strings.ToLower(parent)

	for _, ext := range cacheExtensions {
		if strings.HasSuffix(fileName, ext) {
			return true
		}
	}

	for _, dir := range cacheDirNames {
		if parent == dir {
			return true
		}
	}

	for _, pattern := range cacheNamePatterns {
		if strings.Contains(fileName, pattern) {
			return true
		}
	}

	return false
}

// Classify assigns a category to path by evaluating the full lowercased path
// against the ordered rule list. It is total: anything that matches no rule,
// including paths without a usable file name, is CategoryOther.
func Classify(path string) Category {
	name := baseName(path)
	if name == "" {
		return CategoryOther
	}

	name = strings.ToLower(name)
	lowered := strings.ToLower(path)

	for _, rule := range classifyRules {
		if rule.matches(name, lowered) {
			return rule.category
		}
	}

	return CategoryOther
}

// baseName returns the final path element, or "" when the path has no usable
// file name (empty, dot, dot-dot, or a bare separator).
func baseName(path string) string {
	switch base := filepath.Base(path); base {
	case "", ".", "..", string(filepath.Separator):
		return ""
	default:
		return base
	}
}

func pathContainsAny(patterns ...string) func(name, path string) bool {
	return func(_, path string) bool {
		for _, p := range patterns {
			if strings.Contains(path, p) {
				return true
			}
		}
		return false
	}
}

func nameOrPathContainsAny(patterns ...string) func(name, path string) bool {
	return func(name, path string) bool {
		for _, p := range patterns {
			if strings.Contains(name, p) || strings.Contains(path, p) {
				return true
			}
		}
		return false
	}
}
