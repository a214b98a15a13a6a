// Package artifact implements writing checkpoint artifacts to a shared
// file-system namespace and locating the most recent artifact for
// recovery. All file-system access goes through the FileSystem
// interface so that tests can run against an in-memory implementation.
package artifact

import (
	"io/ioutil"
	"os"
)

// FileSystem is the set of file-system operations the writer and
// locator need.
type FileSystem interface {
	// Stat returns file information for the named file
	Stat(name string) (os.FileInfo, error)

	// MkdirAll creates the named directory along with any necessary
	// parents
	MkdirAll(path string) error

	// RemoveAll removes the named path and any children it contains
	RemoveAll(path string) error

	// ReadDir lists the contents of the named directory
	ReadDir(dirname string) ([]os.FileInfo, error)
}

// OS is the production FileSystem, backed by the operating system.
type OS struct{}

func (OS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

func (OS) MkdirAll(path string) error { return os.MkdirAll(path, 0o755) }

func (OS) RemoveAll(path string) error { return os.RemoveAll(path) }

func (OS) ReadDir(dirname string) ([]os.FileInfo, error) {
	return ioutil.ReadDir(dirname)
}
