package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/internal/core/ports"
	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

// cacheKeyPrefix namespaces library snapshots inside the cache store
const cacheKeyPrefix = "sx:library:"

// LibraryService owns the asset sources and exposes the lookup API
type LibraryService struct {
	cache  *RenderCache
	logger *zap.Logger

	mu      sync.RWMutex
	sources []ports.AssetSource
}

// NewLibraryService creates a library service over the given sources
func NewLibraryService(cache *RenderCache, logger *zap.Logger, sources ...ports.AssetSource) *LibraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewRenderCache(nil, DefaultCacheTTL, false, logger)
	}
	return &LibraryService{
		cache:   cache,
		logger:  logger,
		sources: sources,
	}
}

// LoadLibrary builds a library by reading every source in order. Later
// documents replace earlier ones with the same identifier. Documents the
// library refuses are logged, never dropped silently.
func LoadLibrary(ctx context.Context, logger *zap.Logger, sources ...ports.AssetSource) (*domain.Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lib := domain.NewLibrary()
	for _, src := range sources {
		docs, err := src.Documents(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", src.Name(), err)
		}
		for _, doc := range docs {
			if doc == nil || lib.Add(doc) {
				continue
			}
			logger.Warn("Document not registered",
				zap.String("identifier", doc.Identifier),
				zap.String("source", src.Name()),
				zap.String("path", doc.SourcePath))
		}
	}
	return lib, nil
}

// AddSource merges another source into the library. Its documents win over
// those of earlier sources.
func (s *LibraryService) AddSource(src ports.AssetSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append(s.sources, src)
}

// Debug reports whether debug mode is active
func (s *LibraryService) Debug() bool {
	return s.cache.Debug()
}

// CacheKey is derived from the identity of the configured sources
func (s *LibraryService) CacheKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name()
	}
	sum := sha256.Sum256([]byte(strings.Join(names, "\n")))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Snapshot returns the current library, from cache when possible
func (s *LibraryService) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	sources := append([]ports.AssetSource(nil), s.sources...)
	s.mu.RUnlock()

	snap, err := s.cache.Snapshot(ctx, s.CacheKey(), func(ctx context.Context) (*domain.Library, error) {
		return LoadLibrary(ctx, s.logger, sources...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	return snap, nil
}

// Reload drops cached state so the next lookup reads the sources again
func (s *LibraryService) Reload(ctx context.Context) error {
	return s.cache.Invalidate(ctx, s.CacheKey())
}

// Fetch returns the normalized asset for identifier. Unknown identifiers
// and documents that failed to parse return an error wrapping
// domain.ErrNotFound.
func (s *LibraryService) Fetch(ctx context.Context, identifier string, o domain.Overrides) (*domain.NormalizedAsset, error) {
	snap, doc, err := s.lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	asset := s.cache.GetOrCompute(snap, doc.Identifier, o, func() domain.NormalizedAsset {
		return Render(doc, o)
	})
	if s.Debug() {
		asset.SourcePath = doc.SourcePath
	}
	return &asset, nil
}

// Embed returns inline markup for identifier. Lookup failures are logged
// and yield an empty string, or a diagnostic comment in debug mode.
func (s *LibraryService) Embed(ctx context.Context, identifier string, o domain.Overrides) string {
	asset, err := s.Fetch(ctx, identifier, o)
	if err != nil {
		return s.recover(identifier, err)
	}
	return asset.SVG
}

// Inline embeds a document by any spelling of its name, with no overrides
func (s *LibraryService) Inline(ctx context.Context, name string) string {
	return s.Embed(ctx, name, domain.Overrides{})
}

// Use records identifier on the tracker and returns a sprite reference
func (s *LibraryService) Use(ctx context.Context, tracker *UsageTracker, identifier string) string {
	_, doc, err := s.lookup(ctx, identifier)
	if err != nil {
		return s.recover(identifier, err)
	}
	tracker.Record(doc.Identifier)
	return svg.UseRef(doc.Identifier)
}

// Sprite drains the tracker and returns the sprite document holding every
// used symbol. An empty tracker yields no document; in debug mode a marker
// comment is returned instead.
func (s *LibraryService) Sprite(ctx context.Context, tracker *UsageTracker) (string, error) {
	ids := tracker.Drain()
	if len(ids) == 0 {
		if s.Debug() {
			return "<!-- NO SVGs IN USE -->\n", nil
		}
		return "", nil
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	symbols := make([]string, 0, len(ids))
	for _, id := range ids {
		doc, ok := snap.Library.Get(id)
		if !ok || !doc.Valid() {
			s.logger.Warn("Sprite symbol disappeared from library", zap.String("identifier", id))
			continue
		}
		symbols = append(symbols, symbolFor(doc))
	}
	return svg.Sprite(symbols), nil
}

// ListAll returns metadata for every document ordered by identifier.
// Source paths are only exposed in debug mode.
func (s *LibraryService) ListAll(ctx context.Context) ([]domain.ListEntry, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	docs := snap.Library.Documents()
	entries := make([]domain.ListEntry, 0, len(docs))
	for _, doc := range docs {
		entry := domain.ListEntry{
			Identifier: doc.Identifier,
			Width:      doc.Width,
			Height:     doc.Height,
			Aspect:     doc.Base().Aspect,
			Errors:     doc.Errors,
		}
		if doc.Valid() {
			entry.ViewBox = svg.Resolve(doc.Base(), svg.Sizing{}).ViewBox
		}
		if s.Debug() {
			entry.SourcePath = doc.SourcePath
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Identifier < entries[j].Identifier
	})
	return entries, nil
}

// Raw returns the original, trimmed file content of identifier
func (s *LibraryService) Raw(ctx context.Context, identifier string) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	key := domain.NormalizeKey(identifier)
	doc, ok := snap.Library.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	return doc.Raw, nil
}

// Exists checks if identifier resolves to a usable document
func (s *LibraryService) Exists(ctx context.Context, identifier string) bool {
	_, _, err := s.lookup(ctx, identifier)
	return err == nil
}

// HasSVG reports whether identifier exists.
//
// Deprecated: use Exists.
func (s *LibraryService) HasSVG(ctx context.Context, identifier string) bool {
	return s.Exists(ctx, identifier)
}

// GetSVG returns the normalized asset for identifier.
//
// Deprecated: use Fetch.
func (s *LibraryService) GetSVG(ctx context.Context, identifier string, o domain.Overrides) (*domain.NormalizedAsset, error) {
	return s.Fetch(ctx, identifier, o)
}

func (s *LibraryService) lookup(ctx context.Context, identifier string) (*Snapshot, domain.Document, error) {
	key := domain.NormalizeKey(identifier)
	if key == "" || domain.IsReserved(key) {
		return nil, domain.Document{}, fmt.Errorf("%w: %q", domain.ErrNotFound, identifier)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, domain.Document{}, err
	}

	doc, ok := snap.Library.Get(key)
	if !ok {
		return nil, domain.Document{}, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	if !doc.Valid() {
		return nil, domain.Document{}, fmt.Errorf("%w: %s: %w", domain.ErrNotFound, key, doc.ParseErr())
	}
	return snap, doc, nil
}

// recover turns a lookup failure into the markup returned to callers
func (s *LibraryService) recover(identifier string, err error) string {
	key := domain.NormalizeKey(identifier)
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("SVG lookup failed", zap.String("identifier", key), zap.Error(err))
		if s.Debug() {
			return fmt.Sprintf("\n<!-- SVG Lib Error: %s -->\n", commentSafe(err.Error()))
		}
		return ""
	}

	s.logger.Warn("SVG not found", zap.String("identifier", key), zap.Error(err))
	if s.Debug() {
		return fmt.Sprintf("\n<!-- SVG Lib Error: The key '%s' does not match any registered SVGs -->\n", commentSafe(key))
	}
	return ""
}

func commentSafe(s string) string {
	return strings.ReplaceAll(s, "--", "- -")
}
