package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	rename func(oldpath, newpath string) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		rename: os.Rename,
	}
}

// NewOSFileSystemWithRename creates an OSFileSystem whose Rename delegates to fn.
// Used by tests to inject per-file rename failures against a real directory.
func NewOSFileSystemWithRename(fn func(oldpath, newpath string) error) *OSFileSystem {
	return &OSFileSystem{rename: fn}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (r *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Rename moves oldPath to newPath. Failures keep the OS error as cause.
func (r *OSFileSystem) Rename(oldPath, newPath string) error {
	if err := r.rename(oldPath, newPath); err != nil {
		return &RenameError{Old: oldPath, New: newPath, Cause: err}
	}
	return nil
}

// WalkDir walks the tree rooted at root, see filepath.WalkDir.
func (r *OSFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// ReadDir lists the immediate entries of a directory, sorted by name.
func (r *OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads the whole file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// CreatedTime returns the best available creation timestamp for info.
// Birth time is preferred, then inode change time. ok is false when
// neither is recorded and the modification time was used instead.
func (r *OSFileSystem) CreatedTime(info os.FileInfo) (t time.Time, ok bool) {
	ts := times.Get(info)
	if ts.HasBirthTime() {
		return ts.BirthTime(), true
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime(), true
	}
	return info.ModTime(), false
}

// ReadFileRange reads a range of bytes from a file.
// If offset and limit are both 0, reads the entire file.
func (r *OSFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if offset == 0 && limit == 0 {
		return io.ReadAll(file)
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	var reader io.Reader = file
	if limit > 0 {
		reader = io.LimitReader(file, limit)
	}
	return io.ReadAll(reader)
}
