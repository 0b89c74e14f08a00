package selector

import (
	"io/fs"
	"os"
	"time"
)

// fileSystem defines the filesystem operations needed for selecting files.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
	ReadFile(path string) ([]byte, error)
	CreatedTime(info os.FileInfo) (time.Time, bool)
}

// ignoreMatcher decides whether a root-relative path is excluded.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
