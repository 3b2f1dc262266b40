package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/internal/core/ports"
)

// DefaultCacheTTL is how long a library snapshot stays valid
const DefaultCacheTTL = 12 * time.Hour

// Bookkeeping keys stored next to the identifiers of a cached snapshot
const (
	fromCacheKey      = "_from_cache"
	processingTimeKey = "_processing_time"
)

// LoadFunc builds a library from its sources
type LoadFunc func(ctx context.Context) (*domain.Library, error)

// Snapshot is a loaded library plus how it was obtained
type Snapshot struct {
	Library        *domain.Library
	FromCache      bool
	ProcessingTime time.Duration

	generation uint64
}

// RenderCache keeps library snapshots in an external store and memoizes
// rendered variants per snapshot. In debug mode both layers are bypassed
// so every request reflects the files on disk.
type RenderCache struct {
	store  ports.CacheStore
	ttl    time.Duration
	debug  bool
	logger *zap.Logger
	now    func() time.Time

	mu         sync.RWMutex
	key        string
	current    *Snapshot
	expires    time.Time
	generation uint64
	renders    map[string]domain.NormalizedAsset
}

// NewRenderCache creates a render cache. A nil store disables persistence
// but keeps the in-process layer.
func NewRenderCache(store ports.CacheStore, ttl time.Duration, debug bool, logger *zap.Logger) *RenderCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RenderCache{
		store:   store,
		ttl:     ttl,
		debug:   debug,
		logger:  logger,
		now:     time.Now,
		renders: make(map[string]domain.NormalizedAsset),
	}
}

// Debug reports whether the cache is bypassed
func (c *RenderCache) Debug() bool {
	return c.debug
}

// Snapshot returns the library stored under key, calling load on a miss.
// Concurrent misses are not coordinated; the last writer wins.
func (c *RenderCache) Snapshot(ctx context.Context, key string, load LoadFunc) (*Snapshot, error) {
	if c.debug {
		return c.load(ctx, load)
	}

	c.mu.RLock()
	if c.current != nil && c.key == key && c.now().Before(c.expires) {
		snap := c.current
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	if c.store != nil {
		data, ok, err := c.store.Get(ctx, key)
		switch {
		case err != nil:
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		case ok:
			snap, err := decodeSnapshot(data)
			if err == nil {
				c.install(key, snap)
				c.logger.Debug("Library served from cache",
					zap.String("key", key),
					zap.Int("assets", snap.Library.Count()))
				return snap, nil
			}
			c.logger.Warn("Discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		}
	}

	snap, err := c.load(ctx, load)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		data, err := encodeSnapshot(snap)
		if err == nil {
			err = c.store.Set(ctx, key, data, c.ttl)
		}
		if err != nil {
			c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	c.install(key, snap)
	return snap, nil
}

// GetOrCompute returns the memoized render of identifier for o, computing
// it on a miss. Results computed against a superseded snapshot are not
// memoized. Callers always receive their own copy of the memo entry.
func (c *RenderCache) GetOrCompute(snap *Snapshot, identifier string, o domain.Overrides, compute func() domain.NormalizedAsset) domain.NormalizedAsset {
	if c.debug || snap == nil {
		return compute()
	}

	memoKey := identifier + "\x00" + o.Key()

	c.mu.RLock()
	if snap.generation == c.generation {
		if asset, ok := c.renders[memoKey]; ok {
			c.mu.RUnlock()
			return asset.Clone()
		}
	}
	c.mu.RUnlock()

	asset := compute()

	c.mu.Lock()
	if snap.generation == c.generation {
		c.renders[memoKey] = asset.Clone()
	}
	c.mu.Unlock()

	return asset
}

// Invalidate drops the in-process snapshot and the stored entry for key
func (c *RenderCache) Invalidate(ctx context.Context, key string) error {
	c.mu.Lock()
	c.current = nil
	c.generation++
	c.renders = make(map[string]domain.NormalizedAsset)
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (c *RenderCache) load(ctx context.Context, load LoadFunc) (*Snapshot, error) {
	start := c.now()
	lib, err := load(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := c.now().Sub(start)

	c.logger.Debug("Library loaded",
		zap.Int("assets", lib.Count()),
		zap.Int("invalid", lib.CountInvalid()),
		zap.Duration("duration", elapsed))

	return &Snapshot{Library: lib, ProcessingTime: elapsed}, nil
}

func (c *RenderCache) install(key string, snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	snap.generation = c.generation
	c.key = key
	c.current = snap
	c.expires = c.now().Add(c.ttl)
	c.renders = make(map[string]domain.NormalizedAsset)
}

// encodeSnapshot writes a flat object: one member per identifier plus the
// reserved bookkeeping members
func encodeSnapshot(snap *Snapshot) ([]byte, error) {
	docs := snap.Library.Documents()
	entries := make(map[string]any, len(docs)+2)
	for _, doc := range docs {
		entries[doc.Identifier] = doc
	}
	entries[fromCacheKey] = true
	entries[processingTimeKey] = snap.ProcessingTime.String()

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*Snapshot, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	snap := &Snapshot{Library: domain.NewLibrary()}
	for key, raw := range entries {
		if domain.IsReserved(key) {
			switch key {
			case fromCacheKey:
				_ = json.Unmarshal(raw, &snap.FromCache)
			case processingTimeKey:
				var s string
				if json.Unmarshal(raw, &s) == nil {
					snap.ProcessingTime, _ = time.ParseDuration(s)
				}
			}
			continue
		}

		var doc domain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %q: %w", key, err)
		}
		doc.Identifier = key
		snap.Library.Add(&doc)
	}

	return snap, nil
}
