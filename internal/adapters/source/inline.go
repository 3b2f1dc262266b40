package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/internal/core/ports"
)

// InlineSource serves markup defined in configuration rather than on disk
type InlineSource struct {
	assets map[string]string
}

var _ ports.AssetSource = (*InlineSource)(nil)

// NewInlineSource creates a source from name -> markup pairs. Names go
// through the same normalization as file paths.
func NewInlineSource(assets map[string]string) *InlineSource {
	copied := make(map[string]string, len(assets))
	for name, markup := range assets {
		copied[name] = markup
	}
	return &InlineSource{assets: copied}
}

// Name fingerprints the configured markup so that edits change the cache key
func (s *InlineSource) Name() string {
	h := sha256.New()
	for _, name := range s.names() {
		fmt.Fprintf(h, "%s=%s\n", name, s.assets[name])
	}
	return "inline:" + hex.EncodeToString(h.Sum(nil))[:16]
}

// Documents returns one document per name, ordered by name
func (s *InlineSource) Documents(ctx context.Context) ([]*domain.Document, error) {
	names := s.names()
	docs := make([]*domain.Document, 0, len(names))
	for _, name := range names {
		id := domain.NormalizeKey(name)
		if id == "" {
			continue
		}
		docs = append(docs, domain.NewDocument(id, s.assets[name], "inline:"+name))
	}
	return docs, nil
}

func (s *InlineSource) names() []string {
	names := make([]string, 0, len(s.assets))
	for name := range s.assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
