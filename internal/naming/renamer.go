package naming

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/fsutil"
	"github.com/Cyclone1070/renban/internal/model"
)

// DefaultMaxCollisionAttempts bounds the "_N" disambiguation search.
const DefaultMaxCollisionAttempts = 10000

// Target holds the pieces a final filename is assembled from.
type Target struct {
	Prefix string
	Base   string
	Suffix string
	Ext    string
}

// Name returns the sanitized filename for the given disambiguation counter.
// Counter 0 is the undecorated name; N > 0 inserts "_N" before Ext.
func (t Target) Name(counter int) string {
	if counter == 0 {
		return Sanitize(t.Prefix + t.Base + t.Suffix + t.Ext)
	}
	return Sanitize(fmt.Sprintf("%s%s%s_%d%s", t.Prefix, t.Base, t.Suffix, counter, t.Ext))
}

// Renamer resolves collision-free sibling paths and applies renames.
//
// Every collision check runs against the filesystem at call time, so names
// taken by renames earlier in the same pass are seen. In dry-run mode
// nothing is renamed; instead the Renamer records which paths the simulated
// renames claimed and vacated, so the preview resolves collisions the same
// way the apply pass will.
type Renamer struct {
	fs          fileSystem
	dryRun      bool
	maxAttempts int

	claimed map[string]string // target path -> source that claimed it (dry run)
	vacated map[string]bool   // source paths moved away (dry run)
}

// NewRenamer creates a Renamer. maxAttempts <= 0 selects DefaultMaxCollisionAttempts.
func NewRenamer(fs fileSystem, dryRun bool, maxAttempts int) *Renamer {
	if fs == nil {
		panic("fs is required")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxCollisionAttempts
	}
	return &Renamer{
		fs:          fs,
		dryRun:      dryRun,
		maxAttempts: maxAttempts,
		claimed:     make(map[string]string),
		vacated:     make(map[string]bool),
	}
}

// PlanTarget returns the first sibling path of oldPath built from t that
// is free or is oldPath itself.
func (r *Renamer) PlanTarget(oldPath string, t Target) (string, error) {
	first := t.Name(0)
	if first == "" || first == "." || first == ".." {
		return "", errors.WithDetails(ErrInvalidName, "source", oldPath)
	}

	dir := filepath.Dir(oldPath)
	for counter := 0; counter <= r.maxAttempts; counter++ {
		candidate := filepath.Join(dir, t.Name(counter))
		taken, err := r.taken(oldPath, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &CollisionLimitError{Path: filepath.Join(dir, first), Attempts: r.maxAttempts}
}

// taken reports whether candidate is occupied by something other than oldPath.
func (r *Renamer) taken(oldPath, candidate string) (bool, error) {
	if candidate == oldPath {
		return false, nil
	}

	if r.dryRun {
		if owner, ok := r.claimed[candidate]; ok {
			return owner != oldPath, nil
		}
		if r.vacated[candidate] {
			return false, nil
		}
	}

	info, err := r.fs.Lstat(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &fsutil.StatError{Path: candidate, Cause: err}
	}

	// Case-only renames on case-insensitive volumes resolve to the source
	// itself. Any other name for the same inode is a hardlink and stays taken.
	if !strings.EqualFold(filepath.Base(oldPath), filepath.Base(candidate)) {
		return true, nil
	}
	if oldInfo, err := r.fs.Lstat(oldPath); err == nil && os.SameFile(oldInfo, info) {
		return false, nil
	}
	return true, nil
}

// Apply performs, or in dry-run mode records, the rename of oldPath to finalPath.
// Failures are reported in the outcome, never returned.
func (r *Renamer) Apply(oldPath, finalPath string) model.Outcome {
	out := model.Outcome{
		Source:  oldPath,
		Target:  finalPath,
		OldName: filepath.Base(oldPath),
		NewName: filepath.Base(finalPath),
	}

	if finalPath == oldPath {
		out.Status = model.StatusUnchanged
		return out
	}

	if r.dryRun {
		r.claimed[finalPath] = oldPath
		delete(r.vacated, finalPath)
		r.vacated[oldPath] = true
		out.Status = model.StatusPlanned
		return out
	}

	if err := r.fs.Rename(oldPath, finalPath); err != nil {
		out.Status = model.StatusFailed
		out.Err = err
		return out
	}
	out.Status = model.StatusRenamed
	return out
}

// Rename plans a target for oldPath and applies it. Planning failures
// become a failed outcome with no target.
func (r *Renamer) Rename(oldPath string, t Target) model.Outcome {
	finalPath, err := r.PlanTarget(oldPath, t)
	if err != nil {
		return model.Outcome{
			Source:  oldPath,
			OldName: filepath.Base(oldPath),
			Status:  model.StatusFailed,
			Err:     err,
		}
	}
	return r.Apply(oldPath, finalPath)
}
