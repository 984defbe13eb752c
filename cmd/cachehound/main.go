package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cachehound/cachehound/internal/config"
	"github.com/cachehound/cachehound/internal/logging"
	"github.com/cachehound/cachehound/internal/platform"
	"github.com/cachehound/cachehound/internal/reporter"
	"github.com/cachehound/cachehound/internal/scanner"
	"github.com/cachehound/cachehound/internal/ui"
	"github.com/cachehound/cachehound/internal/ui/styles"
	"github.com/cachehound/cachehound/internal/workflow"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cachehound",
	Short: "Find and interactively remove cache files",
	Long: `Cachehound walks a directory tree, finds files that look like caches,
temporary files, logs, and backups, groups them by category, and deletes
them only after an explicit confirmation.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Scan a directory tree for cache files",
	Long: `Scans the given directory (default: the current directory) for cache
files, prints a category summary, and offers to list and delete what was
found. Nothing is deleted without a confirmed prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(cfg.LogLevel, os.Stderr)
	styles.SetColorMode(cfg.Color)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rep := reporter.New(os.Stdout, cfg.ListLimit)
	rep.PrintScanBanner(path)

	if cfg.ShowVolumeUsage {
		if usage, err := platform.GetDiskUsage(path); err == nil {
			rep.PrintVolumeUsage(usage)
		}
	}

	rep.PrintWalkBanner()

	s := scanner.New()

	var result *scanner.Result
	if liveProgress(cfg) {
		result, err = ui.RunScanView(ctx, s, path, os.Stderr)
	} else {
		result, err = s.Scan(ctx, path)
	}
	if err != nil {
		return err
	}

	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	if _, err := workflow.New(rep, prompter).Run(ctx, result); err != nil {
		return err
	}

	return nil
}

// liveProgress reports whether the scan should render the live view. The
// view draws on stderr, so that is the terminal that matters.
func liveProgress(cfg *config.Config) bool {
	switch cfg.Progress {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
