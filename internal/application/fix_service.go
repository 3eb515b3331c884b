package application

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arena/gotofix/internal/domain"
	"github.com/arena/gotofix/internal/domain/rewrite"
)

// FixService drives a run: enumerate files, rewrite each in turn, count the
// files that changed. Files are processed strictly one at a time.
type FixService struct {
	finder   domain.FileFinder
	store    domain.FileStore
	git      domain.GitInfo
	rewriter *rewrite.Rewriter
	logger   *zap.Logger
}

// NewFixService wires a FixService. git may be nil.
func NewFixService(finder domain.FileFinder, store domain.FileStore, git domain.GitInfo, rewriter *rewrite.Rewriter, logger *zap.Logger) *FixService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FixService{
		finder:   finder,
		store:    store,
		git:      git,
		rewriter: rewriter,
		logger:   logger,
	}
}

// Run rewrites every file matching opts. sink, when non-nil, is told about
// each fixed file as soon as it is handled. The first I/O error aborts the
// run; files already rewritten stay rewritten.
func (s *FixService) Run(ctx context.Context, opts domain.FixOptions, sink domain.ProgressSink) (*domain.FixReport, error) {
	report := &domain.FixReport{
		Rule:   s.rewriter.Rule().Name,
		Dir:    opts.Dir,
		Glob:   opts.Glob,
		DryRun: opts.DryRun,
		Files:  []domain.FileFix{},
	}

	s.logger.Info("starting run",
		zap.String("rule", s.rewriter.Rule().Describe()),
		zap.String("dir", opts.Dir),
		zap.String("glob", opts.Glob),
		zap.Bool("dry_run", opts.DryRun))

	paths, err := s.finder.Find(opts.Dir, opts.Glob)
	if err != nil {
		return nil, fmt.Errorf("finding files: %w", err)
	}

	dirty := s.inspectRepo(opts.Dir, report)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Scanned++

		fix, fixed, err := s.RewriteFile(path, opts)
		if err != nil {
			return nil, err
		}
		if !fixed {
			continue
		}

		if dirty[filepath.Clean(path)] {
			fix.Dirty = true
			s.logger.Warn("file had uncommitted changes before rewrite", zap.String("path", path), zap.Bool("dry_run", opts.DryRun))
		}

		report.Fixed++
		report.Files = append(report.Files, fix)
		if sink != nil {
			if err := sink.FileFixed(fix); err != nil {
				return nil, fmt.Errorf("reporting %s: %w", fix.Name, err)
			}
		}
	}

	s.logger.Info("run complete", zap.Int("scanned", report.Scanned), zap.Int("fixed", report.Fixed))
	return report, nil
}

// RewriteFile reads path, applies the rule and, unless opts.DryRun, writes
// the result back to the same path. The file is only written when the rule
// matched and the content changed.
func (s *FixService) RewriteFile(path string, opts domain.FixOptions) (domain.FileFix, bool, error) {
	data, err := s.store.Read(path)
	if err != nil {
		return domain.FileFix{}, false, fmt.Errorf("reading %s: %w", path, err)
	}

	before := string(data)
	res := s.rewriter.Rewrite(before)
	s.logger.Debug("scanned file", zap.String("path", path), zap.Int("matches", res.Matches))
	if !res.Changed {
		return domain.FileFix{}, false, nil
	}

	fix := domain.FileFix{
		Path:    path,
		Name:    filepath.Base(path),
		Matches: res.Matches,
	}
	if opts.KeepContent {
		fix.Before = before
		fix.After = res.Content
	}

	if opts.DryRun {
		return fix, true, nil
	}

	if err := s.store.Write(path, []byte(res.Content)); err != nil {
		return domain.FileFix{}, false, fmt.Errorf("writing %s: %w", path, err)
	}
	fix.Written = true
	return fix, true, nil
}

// inspectRepo records HEAD and returns the set of files with uncommitted
// changes. Git problems are logged and never fail the run.
func (s *FixService) inspectRepo(dir string, report *domain.FixReport) map[string]bool {
	if s.git == nil || !s.git.IsGitRepo(dir) {
		return nil
	}

	if hash, err := s.git.CommitHash(dir); err == nil {
		report.Commit = hash
		s.logger.Info("target is a git repository", zap.String("head", hash))
	} else {
		s.logger.Debug("no HEAD commit", zap.Error(err))
	}

	files, err := s.git.DirtyFiles(dir)
	if err != nil {
		s.logger.Warn("could not read git status", zap.Error(err))
		return nil
	}
	dirty := make(map[string]bool, len(files))
	for _, f := range files {
		dirty[filepath.Clean(f)] = true
	}
	return dirty
}
