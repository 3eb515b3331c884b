package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// GlobScanner implements domain.FileFinder with a single-directory glob.
type GlobScanner struct {
	fs billy.Filesystem
}

// New returns a scanner over the OS filesystem. Paths must be absolute.
func New() *GlobScanner {
	return NewWithFS(osfs.New("/"))
}

// NewWithFS returns a scanner over fs.
func NewWithFS(fs billy.Filesystem) *GlobScanner {
	return &GlobScanner{fs: fs}
}

// Find returns regular files in dir whose names match glob, in lexical
// order. A missing directory yields no files. Dotfiles are skipped unless
// glob itself starts with a dot.
func (s *GlobScanner) Find(dir, glob string) ([]string, error) {
	if _, err := filepath.Match(glob, ""); err != nil {
		return nil, fmt.Errorf("globbing %s: %w", glob, err)
	}

	matches, err := util.Glob(s.fs, filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", glob, err)
	}

	hidden := strings.HasPrefix(glob, ".")
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !hidden && strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		fi, err := s.fs.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
