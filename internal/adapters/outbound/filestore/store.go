package filestore

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Store implements domain.FileStore with whole-file reads and writes.
type Store struct {
	fs billy.Filesystem
}

// New returns a store over the OS filesystem. Paths must be absolute.
func New() *Store {
	return NewWithFS(osfs.New("/"))
}

// NewWithFS returns a store over fs.
func NewWithFS(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

func (s *Store) Read(path string) ([]byte, error) {
	return util.ReadFile(s.fs, path)
}

// Write truncates and overwrites path. Existing files keep their mode.
func (s *Store) Write(path string, data []byte) error {
	return util.WriteFile(s.fs, path, data, 0644)
}
