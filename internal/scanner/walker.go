package scanner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cachehound/cachehound/internal/logging"
)

// Walker enumerates every regular file reachable from a root directory
type Walker struct {
	log zerolog.Logger
}

// NewWalker creates a new Walker
func NewWalker() *Walker {
	return &Walker{log: logging.WithComponent("walker")}
}

// Walk returns the paths of all regular files under root, descending into
// subdirectories without a depth limit. Pending directories are kept on an
// explicit work stack, so tree depth costs heap, not call stack. Entries that
// cannot be read or statted are skipped silently. Symlinks are followed: a
// link to a file is emitted, a link to a directory is descended, and visited
// directories are deduplicated by resolved real path so cyclic links
// terminate. Result order is unspecified. The only returned error is the
// context's, checked once per directory.
func (w *Walker) Walk(ctx context.Context, root string) ([]string, error) {
	files := []string{}
	visited := make(map[string]bool)
	stack := []string{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		real, err := filepath.EvalSymlinks(dir)
		if err != nil {
			w.log.Debug().Str("dir", dir).Err(err).Msg("skipping unresolvable directory")
			continue
		}
		if visited[real] {
			w.log.Debug().Str("dir", dir).Str("real", real).Msg("skipping visited directory")
			continue
		}
		visited[real] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			w.log.Debug().Str("dir", dir).Err(err).Msg("skipping unreadable directory")
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			info, err := os.Stat(path)
			if err != nil {
				w.log.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
				continue
			}

			switch {
			case info.IsDir():
				stack = append(stack, path)
			case info.Mode().IsRegular():
				files = append(files, path)
			}
		}
	}

	return files, nil
}
