package fs

import (
	iofs "io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations needed to scan a project.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the whole content of a file.
	ReadFile(path string) ([]byte, error)

	// FileMode returns the permission bits of an existing file.
	FileMode(path string) (os.FileMode, error)

	// WalkDir walks the tree rooted at root in lexical order.
	WalkDir(root string, fn iofs.WalkDirFunc) error

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// FileLock acquires a file lock and returns an unlock function.
	FileLock(filename string) (func(), error)
}

type realFS struct{}

// NewFS creates a new FS instance backed by the operating system.
func NewFS() FS {
	return &realFS{}
}
