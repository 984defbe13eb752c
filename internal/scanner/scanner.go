package scanner

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cachehound/cachehound/internal/classifier"
	"github.com/cachehound/cachehound/internal/logging"
	"github.com/cachehound/cachehound/internal/progress"
)

// CacheFile describes one cache file found during a scan. Size is a snapshot
// taken at discovery time and is not re-verified later.
type CacheFile struct {
	Path     string
	Size     int64
	Category classifier.Category
}

// NewCacheFile builds a descriptor for path. It returns ok=false when the
// metadata lookup fails or the path is not (or no longer) a regular file.
func NewCacheFile(path string) (CacheFile, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return CacheFile{}, false
	}

	return CacheFile{
		Path:     path,
		Size:     info.Size(),
		Category: classifier.Classify(path),
	}, true
}

// Result represents the result of a scan operation
type Result struct {
	Files      []CacheFile
	TotalSize  int64
	TotalCount int
}

func (r *Result) add(file CacheFile) {
	r.Files = append(r.Files, file)
	r.TotalSize += file.Size
	r.TotalCount++
}

// GroupByCategory splits the result into per-category sub-results. Map
// iteration order is not stable; callers must not rely on it.
func (r *Result) GroupByCategory() map[classifier.Category]*Result {
	grouped := make(map[classifier.Category]*Result)

	for _, file := range r.Files {
		cat, exists := grouped[file.Category]
		if !exists {
			cat = &Result{Files: []CacheFile{}}
			grouped[file.Category] = cat
		}
		cat.add(file)
	}

	return grouped
}

// Scanner drives a full detection pass: walk the tree, filter candidates
// through the classifier, and materialize descriptors.
type Scanner struct {
	walker   *Walker
	reporter *progress.Reporter
	log      zerolog.Logger
}

// New creates a new Scanner
func New() *Scanner {
	return &Scanner{
		walker:   NewWalker(),
		reporter: progress.NewReporter(),
		log:      logging.WithComponent("scanner"),
	}
}

// SetProgressReporter sets a custom progress reporter
func (s *Scanner) SetProgressReporter(r *progress.Reporter) {
	if r != nil {
		s.reporter = r
	}
}

// ProgressReporter returns the scanner's progress reporter
func (s *Scanner) ProgressReporter() *progress.Reporter {
	return s.reporter
}

// Scan walks root and returns a descriptor for every cache file found. The
// walk output is fully materialized before filtering so the candidate total
// is known up front; the whole file list of a very large tree is therefore
// held in memory for the duration of the scan. Candidates whose metadata
// lookup fails, or which are no longer regular files, are dropped silently.
// Progress is published through the reporter; a slow consumer loses updates
// but never stalls or aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	start := time.Now()
	result := &Result{Files: []CacheFile{}}

	s.reporter.Update(progress.ScanProgress{
		Phase:     progress.PhaseWalking,
		StartTime: start,
	})

	paths, err := s.walker.Walk(ctx, root)
	if err != nil {
		return result, err
	}

	total := len(paths)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.reporter.Update(progress.ScanProgress{
			Phase:       progress.PhaseScanning,
			Scanned:     i + 1,
			Total:       total,
			CurrentPath: path,
			Found:       result.TotalCount,
			FoundSize:   result.TotalSize,
			StartTime:   start,
		})

		if !classifier.IsCacheFile(path) {
			continue
		}

		file, ok := NewCacheFile(path)
		if !ok {
			s.log.Debug().Str("path", path).Msg("dropping candidate without a regular file behind it")
			continue
		}
		result.add(file)
	}

	s.reporter.Update(progress.ScanProgress{
		Phase:     progress.PhaseComplete,
		Scanned:   total,
		Total:     total,
		Found:     result.TotalCount,
		FoundSize: result.TotalSize,
		StartTime: start,
	})

	s.log.Info().Int("candidates", total).Int("found", result.TotalCount).
		Int64("bytes", result.TotalSize).Str("root", root).Msg("scan finished")

	return result, nil
}
