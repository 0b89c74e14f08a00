package naming

import "os"

// fileSystem defines the filesystem operations the renamer needs.
type fileSystem interface {
	Lstat(path string) (os.FileInfo, error)
	Rename(oldPath, newPath string) error
}
