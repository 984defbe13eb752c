// Package cleaner deletes previously scanned cache files and reports the
// outcome of every attempt.
package cleaner

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/cachehound/cachehound/internal/logging"
	"github.com/cachehound/cachehound/internal/scanner"
)

// ResultFunc is called once per file, in collection order, right after the
// deletion attempt. err is nil when the file was removed.
type ResultFunc func(file scanner.CacheFile, err *DeleteError)

// Result summarizes a deletion pass
type Result struct {
	Deleted     []scanner.CacheFile
	DeletedSize int64
	Errors      []*DeleteError
}

// Cleaner deletes cache files one at a time
type Cleaner struct {
	log zerolog.Logger
}

// New creates a new Cleaner
func New() *Cleaner {
	return &Cleaner{
		log: logging.WithComponent("cleaner"),
	}
}

// Clean removes files in collection order. A failed deletion is recorded and
// the pass moves on to the next file; a file that vanished between scan and
// deletion counts as a failure, not a success. The only error Clean itself
// returns is the context's.
func (c *Cleaner) Clean(ctx context.Context, files []scanner.CacheFile, fn ResultFunc) (*Result, error) {
	result := &Result{
		Deleted: []scanner.CacheFile{},
		Errors:  []*DeleteError{},
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := os.Remove(file.Path); err != nil {
			delErr := Categorize(file.Path, err)
			result.Errors = append(result.Errors, delErr)
			c.log.Debug().Str("path", file.Path).Str("reason", delErr.Reason.String()).Msg("delete failed")
			if fn != nil {
				fn(file, delErr)
			}
			continue
		}

		result.Deleted = append(result.Deleted, file)
		result.DeletedSize += file.Size
		if fn != nil {
			fn(file, nil)
		}
	}

	c.log.Info().Int("deleted", len(result.Deleted)).Int("failed", len(result.Errors)).
		Int64("bytes", result.DeletedSize).Msg("clean finished")

	return result, nil
}
