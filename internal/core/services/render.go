package services

import (
	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

// Render re-wraps a document for one set of overrides. The document is not
// modified; every call derives a fresh attribute set.
func Render(doc domain.Document, o domain.Overrides) domain.NormalizedAsset {
	base := doc.Base()
	g := svg.Resolve(base, o.Sizing())

	attrs := g.Apply(doc.Attributes)
	if o.Class != "" {
		attrs[svg.AttrClass] = o.Class
	}
	if o.ID != "" {
		attrs[svg.AttrID] = o.ID
	}

	asset := domain.NormalizedAsset{
		Identifier: doc.Identifier,
		SVG:        svg.Wrap(doc.Inner, attrs),
		Width:      g.Width,
		Height:     g.Height,
		Aspect:     base.Aspect,
		Attributes: attrs,
	}
	if !o.IsZero() {
		asset.OriginalAttributes = doc.Attributes.Clone()
	}
	return asset
}

// symbolFor renders a document as a sprite <symbol>
func symbolFor(doc domain.Document) string {
	g := svg.Resolve(doc.Base(), svg.Sizing{})
	return svg.Symbol(doc.Identifier, g.ViewBox, doc.Inner)
}
