package artifact

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Memory is an in-memory FileSystem for tests. Files are identified by
// slash-cleaned paths; directories exist implicitly once a file is
// created below them or explicitly via MkdirAll.
type Memory struct {
	files map[string]*memFile
}

type memFile struct {
	data    []byte
	modTime time.Time
	dir     bool
}

// NewMemory returns an empty in-memory file system.
func NewMemory() *Memory {
	return &Memory{files: make(map[string]*memFile)}
}

// WriteFile creates or replaces a file with the given contents and
// modification time, creating parent directories as needed.
func (m *Memory) WriteFile(path string, data []byte, modTime time.Time) {
	path = filepath.Clean(path)
	m.mkdirs(filepath.Dir(path))
	m.files[path] = &memFile{data: data, modTime: modTime}
}

// Exists reports whether the named file or directory exists.
func (m *Memory) Exists(path string) bool {
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// Len returns the number of files, excluding directories.
func (m *Memory) Len() int {
	n := 0
	for _, f := range m.files {
		if !f.dir {
			n++
		}
	}
	return n
}

func (m *Memory) mkdirs(dir string) {
	for dir != "." && dir != string(filepath.Separator) && dir != "" {
		if _, ok := m.files[dir]; !ok {
			m.files[dir] = &memFile{dir: true}
		}
		dir = filepath.Dir(dir)
	}
}

func (m *Memory) Stat(name string) (os.FileInfo, error) {
	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return &memFileInfo{name: filepath.Base(name), file: f}, nil
}

func (m *Memory) MkdirAll(path string) error {
	m.mkdirs(filepath.Clean(path))
	return nil
}

func (m *Memory) RemoveAll(path string) error {
	path = filepath.Clean(path)
	for name := range m.files {
		if name == path || strings.HasPrefix(name, path+string(filepath.Separator)) {
			delete(m.files, name)
		}
	}
	return nil
}

func (m *Memory) ReadDir(dirname string) ([]os.FileInfo, error) {
	dirname = filepath.Clean(dirname)
	if f, ok := m.files[dirname]; !ok || !f.dir {
		return nil, &os.PathError{
			Op:   "open",
			Path: dirname,
			Err:  os.ErrNotExist,
		}
	}

	var infos []os.FileInfo
	for name, f := range m.files {
		if filepath.Dir(name) == dirname {
			infos = append(infos, &memFileInfo{
				name: filepath.Base(name),
				file: f,
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})
	return infos, nil
}

// memFileInfo implements os.FileInfo for in-memory files
type memFileInfo struct {
	name string
	file *memFile
}

func (i *memFileInfo) Name() string { return i.name }

func (i *memFileInfo) Size() int64 { return int64(len(i.file.data)) }

func (i *memFileInfo) Mode() os.FileMode {
	if i.file.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}

func (i *memFileInfo) ModTime() time.Time { return i.file.modTime }

func (i *memFileInfo) IsDir() bool { return i.file.dir }

func (i *memFileInfo) Sys() interface{} { return nil }
