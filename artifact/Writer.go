package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/samuelfneumann/gocheckpoint/coordinator"
)

// Saver persists trained state to a file at a path. How the state is
// serialized is opaque to this package.
type Saver interface {
	Save(path string) error
}

// PathIsDirectoryError indicates that a checkpoint's resolved path
// collides with an existing directory. This is a configuration
// mistake (e.g. a template that resolves to a directory name) and is
// not retried.
type PathIsDirectoryError struct {
	Path string
}

func (e *PathIsDirectoryError) Error() string {
	return fmt.Sprintf("checkpoint path %q is an existing directory", e.Path)
}

// Writer persists checkpoint artifacts under the distributed
// designated-writer protocol: the designated writer saves to the real
// path, every other writer saves a placeholder to its own temporary
// location and removes it once the save round completes. After a
// round, all writers observe the same file-existence state at the real
// path and own no other side effects.
type Writer struct {
	fs    FileSystem
	coord coordinator.Coordinator
}

// NewWriter returns a Writer that saves through the given file system
// under the roles assigned by coord.
func NewWriter(fs FileSystem, coord coordinator.Coordinator) *Writer {
	return &Writer{fs: fs, coord: coord}
}

// Write saves state to path. On the designated writer, path names the
// persisted artifact on success. On every other writer, the state is
// saved to a writer-local temporary location as a synchronization
// placeholder and the temporary directory is removed before Write
// returns, leaving no residual file.
func (w *Writer) Write(path string, s Saver) error {
	writePath := path
	if !w.coord.IsDesignatedWriter() {
		writePath = w.coord.TempPath(path)
	}

	if info, err := w.fs.Stat(writePath); err == nil && info.IsDir() {
		return &PathIsDirectoryError{Path: writePath}
	}

	if dir := filepath.Dir(writePath); dir != "." {
		if err := w.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("write: could not create checkpoint "+
				"directory: %v", err)
		}
	}

	if err := s.Save(writePath); err != nil {
		return fmt.Errorf("write: could not save checkpoint to %v: %v",
			writePath, err)
	}

	// Non-designated writers wrote only a placeholder; reclaim it now
	// that the save round is complete.
	if writePath != path {
		if err := w.fs.RemoveAll(filepath.Dir(writePath)); err != nil {
			return fmt.Errorf("write: could not remove temporary "+
				"checkpoint directory: %v", err)
		}
	}
	return nil
}
