package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

// ErrNotFound is returned when an identifier has no usable document
var ErrNotFound = errors.New("svg not found")

// Document is one registered asset. Documents are immutable once loaded;
// rendering derives new values instead of mutating them.
type Document struct {
	Identifier string         `json:"identifier"`
	Raw        string         `json:"raw"`
	Inner      string         `json:"inner,omitempty"`
	Width      *int           `json:"width,omitempty"`
	Height     *int           `json:"height,omitempty"`
	Aspect     float64        `json:"aspect,omitempty"`
	Attributes svg.Attributes `json:"attributes,omitempty"`
	SourcePath string         `json:"source_path,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
}

// NewDocument parses raw markup into a document. A parse failure does not
// fail the call: the document is returned carrying Errors instead of
// geometry so that it still shows up in listings.
func NewDocument(identifier, raw, sourcePath string) *Document {
	doc := &Document{
		Identifier: identifier,
		Raw:        strings.TrimSpace(raw),
		SourcePath: sourcePath,
	}

	parsed, err := svg.Parse(raw)
	if err != nil {
		var pe *svg.ParseError
		if errors.As(err, &pe) {
			doc.Errors = append([]string(nil), pe.Diagnostics...)
		} else {
			doc.Errors = []string{err.Error()}
		}
		return doc
	}

	doc.Inner = parsed.Inner
	doc.Width = parsed.Width
	doc.Height = parsed.Height
	doc.Aspect = parsed.Aspect
	doc.Attributes = parsed.Attributes
	return doc
}

// Valid reports whether the document parsed cleanly
func (d *Document) Valid() bool {
	return len(d.Errors) == 0
}

// ParseErr returns the parse failure as an error, or nil
func (d *Document) ParseErr() error {
	if d.Valid() {
		return nil
	}
	return &svg.ParseError{Diagnostics: d.Errors}
}

// Base returns the intrinsic geometry used by svg.Resolve
func (d *Document) Base() svg.Base {
	aspect := d.Aspect
	if aspect == 0 {
		aspect = 1
	}
	return svg.Base{
		Width:      d.Width,
		Height:     d.Height,
		Aspect:     aspect,
		Attributes: d.Attributes,
	}
}

// NormalizedAsset is a document re-wrapped for one set of overrides
type NormalizedAsset struct {
	Identifier         string         `json:"identifier"`
	SVG                string         `json:"svg"`
	Width              *int           `json:"width,omitempty"`
	Height             *int           `json:"height,omitempty"`
	Aspect             float64        `json:"aspect"`
	Attributes         svg.Attributes `json:"attributes"`
	OriginalAttributes svg.Attributes `json:"original_attributes,omitempty"`
	SourcePath         string         `json:"source_path,omitempty"`
}

// Clone returns a deep copy that shares no maps or pointers with a
func (a NormalizedAsset) Clone() NormalizedAsset {
	out := a
	out.Width = copyInt(a.Width)
	out.Height = copyInt(a.Height)
	if a.Attributes != nil {
		out.Attributes = a.Attributes.Clone()
	}
	if a.OriginalAttributes != nil {
		out.OriginalAttributes = a.OriginalAttributes.Clone()
	}
	return out
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

// ListEntry is the public metadata of one registered document
type ListEntry struct {
	Identifier string   `json:"identifier"`
	Width      *int     `json:"width,omitempty"`
	Height     *int     `json:"height,omitempty"`
	Aspect     float64  `json:"aspect"`
	ViewBox    string   `json:"viewBox,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	SourcePath string   `json:"source_path,omitempty"`
}

// GetDimensionsString returns "WxH" or "-" when unknown
func (e ListEntry) GetDimensionsString() string {
	if e.Width == nil || e.Height == nil {
		return "-"
	}
	return fmt.Sprintf("%dx%d", *e.Width, *e.Height)
}
