// Package reporter renders scan and deletion results as human-readable
// console output.
package reporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cachehound/cachehound/internal/cleaner"
	"github.com/cachehound/cachehound/internal/platform"
	"github.com/cachehound/cachehound/internal/scanner"
	"github.com/cachehound/cachehound/internal/ui/styles"
	"github.com/cachehound/cachehound/pkg/utils"
)

// Reporter writes the console output for a detection run
type Reporter struct {
	writer    io.Writer
	listLimit int
}

// New creates a new Reporter. listLimit caps the file listing; zero or
// negative means no cap.
func New(writer io.Writer, listLimit int) *Reporter {
	return &Reporter{
		writer:    writer,
		listLimit: listLimit,
	}
}

// PrintScanBanner announces the scan target
func (r *Reporter) PrintScanBanner(path string) {
	fmt.Fprintf(r.writer, "%s Scanning for cache files in %s\n",
		styles.ScanStyle.Render("[Scan:]"), path)
}

// PrintWalkBanner announces the traversal phase
func (r *Reporter) PrintWalkBanner() {
	fmt.Fprintf(r.writer, "%s Traversing directory structure...\n",
		styles.RunningStyle.Render("[Running!]"))
}

// PrintVolumeUsage prints the usage line for the volume holding the scan root
func (r *Reporter) PrintVolumeUsage(usage *platform.DiskUsage) {
	if usage == nil {
		return
	}
	fmt.Fprintf(r.writer, "%s %s of %s used (%.1f%%)\n",
		styles.DimStyle.Render("Volume:"),
		utils.FormatBytes(int64(usage.Used)),
		utils.FormatBytes(int64(usage.Total)),
		usage.UsedPercent)
}

// PrintFound prints the scan outcome line
func (r *Reporter) PrintFound(result *scanner.Result) {
	fmt.Fprintf(r.writer, "\n%s Found %d cache files totaling %s\n",
		styles.SuccessStyle.Render("[OK!]"), result.TotalCount, styles.RenderSize(result.TotalSize))
}

// PrintCategorySummary prints per-category counts and sizes. Group order is
// not specified.
func (r *Reporter) PrintCategorySummary(result *scanner.Result) {
	fmt.Fprintf(r.writer, "\n%s\n", styles.HeaderStyle.Render("Category Summary: "))
	for category, group := range result.GroupByCategory() {
		fmt.Fprintf(r.writer, "  %s: %d files (%s)\n",
			category, group.TotalCount, styles.RenderSize(group.TotalSize))
	}
}

// PrintFileList prints every cache file, capped at listLimit entries
func (r *Reporter) PrintFileList(result *scanner.Result) {
	fmt.Fprintf(r.writer, "\n%s\n", styles.HeaderStyle.Render("Cache files: "))

	limit := len(result.Files)
	if r.listLimit > 0 && r.listLimit < limit {
		limit = r.listLimit
	}

	for _, file := range result.Files[:limit] {
		fmt.Fprintf(r.writer, "  %s (%s) [%s]\n",
			styles.FileNameStyle.Render(filepath.Base(file.Path)),
			styles.RenderSize(file.Size),
			styles.CategoryStyle.Render(file.Category.String()))
		fmt.Fprintf(r.writer, "    %s\n", styles.FilePathStyle.Render(file.Path))
	}

	if rest := len(result.Files) - limit; rest > 0 {
		fmt.Fprintf(r.writer, "  %s\n",
			styles.DimStyle.Render(fmt.Sprintf("... and %d more", rest)))
	}
}

// PrintDeleteStart announces the deletion phase
func (r *Reporter) PrintDeleteStart() {
	fmt.Fprintf(r.writer, "\n%s\n", styles.HeaderStyle.Render("🗑️ Deleting cache files..."))
}

// PrintDeleteResult prints the outcome line for one deletion attempt
func (r *Reporter) PrintDeleteResult(file scanner.CacheFile, delErr *cleaner.DeleteError) {
	if delErr != nil {
		fmt.Fprintf(r.writer, "  %s Failed to delete %s: %s\n",
			styles.ErrorStyle.Render("[Failed!]"), file.Path, delErr.Cause())
		return
	}
	fmt.Fprintf(r.writer, "  %s Deleted %s\n",
		styles.SuccessStyle.Render("[OK!]"), file.Path)
}

// PrintDeleteSummary prints the final tally and, when any deletion failed,
// the grouped failure report
func (r *Reporter) PrintDeleteSummary(result *cleaner.Result) {
	fmt.Fprintf(r.writer, "\n%s Deleted %d files totaling %s\n",
		styles.SuccessStyle.Render("[OK!]"), len(result.Deleted), styles.RenderSize(result.DeletedSize))

	if summary := cleaner.FormatErrorSummary(result.Errors); summary != "" {
		fmt.Fprint(r.writer, summary)
	}
}

// PrintDeletionCanceled prints the declined-deletion notice
func (r *Reporter) PrintDeletionCanceled() {
	fmt.Fprintf(r.writer, "\n%s Deletion canceled\n",
		styles.SuccessStyle.Render("[OK!]"))
}
