package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

func TestRender(t *testing.T) {
	ns := ` xmlns="` + svg.Namespace + `">`

	tests := []struct {
		name      string
		raw       string
		overrides domain.Overrides
		wantSVG   string
		wantOrig  bool
	}{
		{
			name:    "no overrides synthesizes viewBox",
			raw:     `<svg width="40" height="25"><rect/></svg>`,
			wantSVG: `<svg width="40" height="25" viewBox="0 0 40 25"` + ns + `<rect/></svg>`,
		},
		{
			name:      "literal width keeps base height",
			raw:       `<svg width="40" height="25"><rect/></svg>`,
			overrides: domain.Overrides{Width: svg.Px(80), Class: "icon"},
			wantSVG:   `<svg class="icon" width="80" height="25" viewBox="0 0 40 25"` + ns + `<rect/></svg>`,
			wantOrig:  true,
		},
		{
			name:      "auto width derived from literal height",
			raw:       `<svg viewBox="0 0 36 48"><path d="M0 0"/></svg>`,
			overrides: domain.Overrides{Width: svg.Auto, Height: svg.Px(120)},
			wantSVG:   `<svg width="90" height="120" viewBox="0 0 36 48"` + ns + `<path d="M0 0"/></svg>`,
			wantOrig:  true,
		},
		{
			name:      "id override replaces source id",
			raw:       `<svg id="old" class="a" viewBox="0 0 10 10" onload="x()"><g/></svg>`,
			overrides: domain.Overrides{ID: "new"},
			wantSVG:   `<svg id="new" class="a" viewBox="0 0 10 10"` + ns + `<g/></svg>`,
			wantOrig:  true,
		},
		{
			name:    "no geometry at all",
			raw:     `<svg><g/></svg>`,
			wantSVG: `<svg` + ns + `<g/></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.NewDocument("icon", tt.raw, "")
			if !doc.Valid() {
				t.Fatalf("NewDocument(%q) errors = %v", tt.raw, doc.Errors)
			}

			asset := Render(*doc, tt.overrides)
			if asset.SVG != tt.wantSVG {
				t.Errorf("Render().SVG = %q, want %q", asset.SVG, tt.wantSVG)
			}
			if got := asset.OriginalAttributes != nil; got != tt.wantOrig {
				t.Errorf("Render() has original attributes = %v, want %v", got, tt.wantOrig)
			}
			if diff := cmp.Diff(doc.Attributes, domain.NewDocument("icon", tt.raw, "").Attributes); diff != "" {
				t.Errorf("Render() mutated document attributes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSymbolFor(t *testing.T) {
	doc := domain.NewDocument("arrow", `<svg width="36" height="48"><path/></svg>`, "")
	want := `<symbol id="arrow" viewBox="0 0 36 48"><path/></symbol>`
	if got := symbolFor(*doc); got != want {
		t.Errorf("symbolFor() = %q, want %q", got, want)
	}
}
