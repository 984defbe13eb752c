// Package workflow drives the interaction that follows a finished scan:
// print the summary, offer the full listing, then delete on explicit
// confirmation.
package workflow

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cachehound/cachehound/internal/cleaner"
	"github.com/cachehound/cachehound/internal/logging"
	"github.com/cachehound/cachehound/internal/reporter"
	"github.com/cachehound/cachehound/internal/scanner"
)

// Confirmer answers yes/no prompts. Implementations decide how the question
// reaches the user.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// State tracks how far the post-scan interaction has progressed
type State int

const (
	StateScanned State = iota
	StateSummarized
	StateResolved
)

const (
	promptShowList = "Do you want to see the full list of cache files? (y/N)"
	promptDelete   = "Do you want to delete these cache files? (y/N)"
)

// Outcome describes how a run ended
type Outcome struct {
	ListShown   bool
	DeletionRun bool
	Deleted     int
	FreedBytes  int64
	Failures    int
}

// Workflow owns everything between a finished scan and process exit
type Workflow struct {
	reporter  *reporter.Reporter
	cleaner   *cleaner.Cleaner
	confirmer Confirmer
	state     State
	log       zerolog.Logger
}

// New creates a Workflow rendering through rep and asking through confirmer
func New(rep *reporter.Reporter, confirmer Confirmer) *Workflow {
	return &Workflow{
		reporter:  rep,
		cleaner:   cleaner.New(),
		confirmer: confirmer,
		state:     StateScanned,
		log:       logging.WithComponent("workflow"),
	}
}

// State returns the current interaction state
func (w *Workflow) State() State {
	return w.state
}

// Run prints the scan outcome and, unless the scan came back empty, walks the
// two confirmations: show the full listing, then delete. An empty scan skips
// both prompts. The returned error is fatal (prompt I/O or context); declined
// prompts and failed deletions are not errors.
func (w *Workflow) Run(ctx context.Context, result *scanner.Result) (*Outcome, error) {
	outcome := &Outcome{}

	w.reporter.PrintFound(result)

	if result.TotalCount == 0 {
		w.state = StateResolved
		return outcome, nil
	}

	w.reporter.PrintCategorySummary(result)
	w.state = StateSummarized

	showList, err := w.confirmer.Confirm(promptShowList)
	if err != nil {
		return outcome, err
	}
	if showList {
		w.reporter.PrintFileList(result)
		outcome.ListShown = true
	}

	doDelete, err := w.confirmer.Confirm(promptDelete)
	if err != nil {
		return outcome, err
	}
	w.log.Debug().Bool("list", showList).Bool("delete", doDelete).Msg("prompts answered")

	if !doDelete {
		w.reporter.PrintDeletionCanceled()
		w.state = StateResolved
		return outcome, nil
	}

	w.reporter.PrintDeleteStart()
	cleanResult, err := w.cleaner.Clean(ctx, result.Files, w.reporter.PrintDeleteResult)
	if err != nil {
		return outcome, err
	}
	w.reporter.PrintDeleteSummary(cleanResult)

	outcome.DeletionRun = true
	outcome.Deleted = len(cleanResult.Deleted)
	outcome.FreedBytes = cleanResult.DeletedSize
	outcome.Failures = len(cleanResult.Errors)
	w.state = StateResolved

	return outcome, nil
}
