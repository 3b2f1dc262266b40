package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/internal/core/ports"
)

// DefaultWorkers bounds how many files are parsed at once
const DefaultWorkers = 4

// DirectorySource loads every .svg file below a root directory
type DirectorySource struct {
	root    string
	workers int
	logger  *zap.Logger
}

// Ensure it implements the interface
var _ ports.AssetSource = (*DirectorySource)(nil)

// NewDirectorySource creates a source rooted at root
func NewDirectorySource(root string, workers int, logger *zap.Logger) *DirectorySource {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &DirectorySource{
		root:    filepath.Clean(root),
		workers: workers,
		logger:  logger,
	}
}

// Root returns the absolute root directory
func (s *DirectorySource) Root() string {
	return s.root
}

// Name identifies the source by its root
func (s *DirectorySource) Name() string {
	return "dir:" + s.root
}

// Documents walks the root in lexical order and parses every file whose
// extension is svg in any case. A missing or non-directory root yields no
// documents and no error.
func (s *DirectorySource) Documents(ctx context.Context) ([]*domain.Document, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		s.logger.Debug("Library root unavailable", zap.String("root", s.root))
		return nil, nil
	}

	paths, err := s.collect()
	if err != nil {
		return nil, err
	}

	docs := make([]*domain.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = s.load(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := docs[:0]
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *DirectorySource) collect() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, not fatal
			if d != nil && d.IsDir() && path != s.root {
				s.logger.Warn("Skipping unreadable directory", zap.String("path", path), zap.Error(err))
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !IsSVG(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	return paths, nil
}

func (s *DirectorySource) load(path string) *domain.Document {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nil
	}
	identifier := domain.NormalizeKey(filepath.ToSlash(rel))
	if identifier == "" {
		return nil
	}
	if domain.IsReserved(identifier) {
		s.logger.Warn("Skipping svg with a reserved identifier",
			zap.String("identifier", identifier),
			zap.String("path", path))
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Failed to read svg", zap.String("path", path), zap.Error(err))
		doc := &domain.Document{Identifier: identifier, SourcePath: path}
		if errors.Is(err, fs.ErrPermission) {
			doc.Errors = []string{"permission denied"}
		} else {
			doc.Errors = []string{err.Error()}
		}
		return doc
	}

	doc := domain.NewDocument(identifier, string(content), path)
	if !doc.Valid() {
		s.logger.Warn("Invalid svg",
			zap.String("identifier", identifier),
			zap.String("path", path),
			zap.Strings("errors", doc.Errors))
	}
	return doc
}

// IsSVG reports whether path has an svg extension in any case
func IsSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}
