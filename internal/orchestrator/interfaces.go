package orchestrator

import (
	"io/fs"
	"os"
	"time"
)

// fileSystem is everything a pass touches on disk: the selector walk, the
// content reads of ai-summary and the renamer's Lstat/Rename.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	Rename(oldPath, newPath string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	ReadFile(path string) ([]byte, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
	CreatedTime(info os.FileInfo) (time.Time, bool)
}
