package scanner

import (
	"context"
	"sort"
	"testing"

	"github.com/cachehound/cachehound/internal/classifier"
	"github.com/cachehound/cachehound/internal/progress"
	"github.com/cachehound/cachehound/internal/testutil"
)

// =============================================================================
// Scan Tests
// =============================================================================

func TestScannerScan(t *testing.T) {
	f := testutil.NewFixture(t)

	serverLog := f.CreateFileSized("logs/server.log", 10)
	browserCache := f.CreateFileSized("firefox/cache2/entries/data.cache", 20)
	buildTmp := f.CreateFileSized("tmp/build.tmp", 30)
	reportBak := f.CreateFileSized("office/report.bak", 40)
	f.CreateFileSized("docs/notes.txt", 50)
	f.CreateFileSized("src/main.go", 60)

	result, err := New().Scan(context.Background(), f.RootDir)
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil", err)
	}

	if result.TotalCount != 4 {
		t.Errorf("Scan() TotalCount = %d, want 4", result.TotalCount)
	}
	if result.TotalSize != 100 {
		t.Errorf("Scan() TotalSize = %d, want 100", result.TotalSize)
	}
	if len(result.Files) != result.TotalCount {
		t.Errorf("Scan() len(Files) = %d, want TotalCount %d", len(result.Files), result.TotalCount)
	}

	byPath := make(map[string]CacheFile, len(result.Files))
	var got []string
	for _, file := range result.Files {
		byPath[file.Path] = file
		got = append(got, file.Path)
	}
	sort.Strings(got)

	want := []string{serverLog, browserCache, buildTmp, reportBak}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("Scan() files = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan() files[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	sizes := map[string]int64{
		serverLog:    10,
		browserCache: 20,
		buildTmp:     30,
		reportBak:    40,
	}
	for path, size := range sizes {
		if byPath[path].Size != size {
			t.Errorf("Scan() size of %q = %d, want %d", path, byPath[path].Size, size)
		}
	}

	categories := map[string]classifier.Category{
		serverLog:    classifier.CategoryLog,
		browserCache: classifier.CategoryBrowser,
		buildTmp:     classifier.CategoryTemporary,
	}
	for path, category := range categories {
		if byPath[path].Category != category {
			t.Errorf("Scan() category of %q = %v, want %v", path, byPath[path].Category, category)
		}
	}
}

func TestScannerScanEmptyTree(t *testing.T) {
	f := testutil.NewFixture(t)
	root := f.CreateDir("bare")

	result, err := New().Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil", err)
	}
	if result.TotalCount != 0 {
		t.Errorf("Scan() TotalCount = %d, want 0", result.TotalCount)
	}
	if result.TotalSize != 0 {
		t.Errorf("Scan() TotalSize = %d, want 0", result.TotalSize)
	}
	if len(result.Files) != 0 {
		t.Errorf("Scan() Files = %v, want none", result.Files)
	}
}

func TestScannerScanCancelled(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFile("cache/app.cache", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Scan(ctx, f.RootDir)
	if err != context.Canceled {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

// =============================================================================
// Progress Event Tests
// =============================================================================

func TestScannerScanPublishesProgress(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFileSized("logs/app.log", 5)
	f.CreateFileSized("cache/blob.cache", 6)
	f.CreateFileSized("docs/readme.md", 7)

	s := New()
	reporter := s.ProgressReporter()
	ch := reporter.Subscribe()

	if _, err := s.Scan(context.Background(), f.RootDir); err != nil {
		t.Fatalf("Scan() error = %v, want nil", err)
	}
	reporter.Unsubscribe(ch)

	var events []progress.ScanProgress
	for p := range ch {
		events = append(events, p)
	}

	if len(events) < 3 {
		t.Fatalf("Scan() published %d events, want at least 3", len(events))
	}
	if events[0].Phase != progress.PhaseWalking {
		t.Errorf("first event phase = %v, want %v", events[0].Phase, progress.PhaseWalking)
	}

	last := events[len(events)-1]
	if last.Phase != progress.PhaseComplete {
		t.Errorf("last event phase = %v, want %v", last.Phase, progress.PhaseComplete)
	}
	if last.Total != 3 || last.Scanned != 3 {
		t.Errorf("last event scanned/total = %d/%d, want 3/3", last.Scanned, last.Total)
	}
	if last.Found != 2 {
		t.Errorf("last event found = %d, want 2", last.Found)
	}

	prev := 0
	for _, p := range events[1 : len(events)-1] {
		if p.Phase != progress.PhaseScanning {
			t.Errorf("middle event phase = %v, want %v", p.Phase, progress.PhaseScanning)
		}
		if p.Total != 3 {
			t.Errorf("scanning event total = %d, want 3", p.Total)
		}
		if p.Scanned < prev {
			t.Errorf("scanned went backwards: %d after %d", p.Scanned, prev)
		}
		prev = p.Scanned
	}
}

// =============================================================================
// CacheFile Tests
// =============================================================================

func TestNewCacheFile(t *testing.T) {
	f := testutil.NewFixture(t)
	path := f.CreateFileSized("logs/access.log", 123)

	file, ok := NewCacheFile(path)
	if !ok {
		t.Fatalf("NewCacheFile(%q) ok = false, want true", path)
	}
	if file.Path != path {
		t.Errorf("NewCacheFile() Path = %q, want %q", file.Path, path)
	}
	if file.Size != 123 {
		t.Errorf("NewCacheFile() Size = %d, want 123", file.Size)
	}
	if file.Category != classifier.CategoryLog {
		t.Errorf("NewCacheFile() Category = %v, want %v", file.Category, classifier.CategoryLog)
	}
}

func TestNewCacheFileMissing(t *testing.T) {
	f := testutil.NewFixture(t)

	if _, ok := NewCacheFile(f.Path("gone.cache")); ok {
		t.Error("NewCacheFile() ok = true for missing path, want false")
	}
}

func TestNewCacheFileDirectory(t *testing.T) {
	f := testutil.NewFixture(t)
	dir := f.CreateDir("cache/subdir.cache")

	if _, ok := NewCacheFile(dir); ok {
		t.Error("NewCacheFile() ok = true for directory, want false")
	}
}

// =============================================================================
// Result Tests
// =============================================================================

func TestResultGroupByCategory(t *testing.T) {
	result := &Result{}
	result.add(CacheFile{Path: "a.log", Size: 10, Category: classifier.CategoryLog})
	result.add(CacheFile{Path: "b.log", Size: 20, Category: classifier.CategoryLog})
	result.add(CacheFile{Path: "c.cache", Size: 30, Category: classifier.CategoryBrowser})

	if result.TotalCount != 3 || result.TotalSize != 60 {
		t.Fatalf("Result totals = %d files / %d bytes, want 3 / 60", result.TotalCount, result.TotalSize)
	}

	grouped := result.GroupByCategory()
	if len(grouped) != 2 {
		t.Fatalf("GroupByCategory() returned %d groups, want 2", len(grouped))
	}

	logs := grouped[classifier.CategoryLog]
	if logs == nil || logs.TotalCount != 2 || logs.TotalSize != 30 {
		t.Errorf("log group = %+v, want 2 files / 30 bytes", logs)
	}

	browser := grouped[classifier.CategoryBrowser]
	if browser == nil || browser.TotalCount != 1 || browser.TotalSize != 30 {
		t.Errorf("browser group = %+v, want 1 file / 30 bytes", browser)
	}
}

func TestResultGroupByCategoryEmpty(t *testing.T) {
	result := &Result{}

	if grouped := result.GroupByCategory(); len(grouped) != 0 {
		t.Errorf("GroupByCategory() returned %d groups for empty result, want 0", len(grouped))
	}
}
