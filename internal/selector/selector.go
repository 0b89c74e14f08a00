// Package selector enumerates the candidate files of a rename pass.
package selector

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/model"
	"github.com/Cyclone1070/renban/internal/naming"
)

// Selector walks a root directory and returns the regular files to rename.
type Selector struct {
	fs fileSystem
}

// New creates a Selector with injected filesystem.
func New(fs fileSystem) *Selector {
	if fs == nil {
		panic("fs is required")
	}
	return &Selector{fs: fs}
}

// Select returns the regular files under opts.Root that pass every filter,
// sorted by full path. The order is relied on by positional strategies.
// Nothing matching is an empty slice, not an error.
func (s *Selector) Select(ctx context.Context, opts Options) ([]model.FileEntry, error) {
	log := zerolog.Ctx(ctx)

	if opts.Root == "" {
		return nil, ErrRootRequired
	}
	root := filepath.Clean(opts.Root)

	info, err := s.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithDetails(ErrRootNotFound, "root", root)
		}
		return nil, errors.Errorf("checking root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.WithDetails(ErrRootNotDirectory, "root", root)
	}

	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &InvalidPatternError{Pattern: pattern}
		}
	}

	var ignore ignoreMatcher = noOpMatcher{}
	if opts.RespectGitignore {
		m, err := NewIgnoreMatcher(root, s.fs)
		if err != nil {
			return nil, err
		}
		ignore = m
	}

	allowed := make(map[string]bool)
	for _, ext := range NormalizeExtensions(opts.Extensions) {
		allowed[ext] = true
	}

	var entries []model.FileEntry
	walkErr := s.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if !opts.Recursive {
				return filepath.SkipDir
			}
			if opts.RespectGitignore && (d.Name() == ".git" || ignore.ShouldIgnore(rel, true)) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks count when they point at a regular file; devices,
		// sockets, pipes and links to directories are skipped.
		var info fs.FileInfo
		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			target, err := s.fs.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				return nil
			}
			info = target
		default:
			return nil
		}
		if ignore.ShouldIgnore(rel, false) {
			return nil
		}
		if !matchGlobs(rel, opts.Include, opts.Exclude) {
			return nil
		}

		stem, ext := naming.SplitExt(d.Name())
		if len(allowed) > 0 && !allowed[strings.ToLower(ext)] {
			return nil
		}

		fi := info
		if fi == nil {
			fi, err = d.Info()
			if err != nil {
				// Removed between readdir and stat.
				log.Warn().Err(err).Str("path", path).Msg("skipping vanished file")
				return nil
			}
		}
		created, hasCreated := s.fs.CreatedTime(fi)

		entries = append(entries, model.FileEntry{
			Path:           path,
			Name:           d.Name(),
			Stem:           stem,
			Ext:            ext,
			Size:           fi.Size(),
			ModTime:        fi.ModTime(),
			CreatedTime:    created,
			HasCreatedTime: hasCreated,
		})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("walking %s: %w", root, walkErr)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	log.Debug().Str("root", root).Int("files", len(entries)).Msg("selection complete")
	return entries, nil
}

// matchGlobs applies include (any must match, when given) and exclude (none may match).
func matchGlobs(rel string, include, exclude []string) bool {
	if len(include) > 0 {
		matched := false
		for _, pattern := range include {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}
