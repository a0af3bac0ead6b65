package client

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// File is a user-chosen blob with a display name.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type memFile struct {
	name string
	data []byte
}

// NewFile wraps in-memory content as a File.
func NewFile(name string, data []byte) File {
	return &memFile{name: name, data: data}
}

func (f *memFile) Name() string { return f.name }

func (f *memFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

type diskFile struct {
	path string
}

// DiskFile returns a File backed by path. The file is opened lazily on each upload.
func DiskFile(path string) File {
	return &diskFile{path: path}
}

func (f *diskFile) Name() string { return filepath.Base(f.path) }

func (f *diskFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
