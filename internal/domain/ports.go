package domain

// FileFinder enumerates the files a run should consider.
type FileFinder interface {
	Find(dir, glob string) ([]string, error)
}

// FileStore reads and overwrites whole files.
type FileStore interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}

// GitInfo provides git metadata about the target directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
	// DirtyFiles returns absolute paths of files with uncommitted changes.
	DirtyFiles(path string) ([]string, error)
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ProgressSink is notified as each file is fixed, in processing order.
type ProgressSink interface {
	FileFixed(fix FileFix) error
}
