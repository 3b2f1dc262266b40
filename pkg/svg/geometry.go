package svg

import (
	"fmt"
	"math"
	"strconv"
)

// Base is the intrinsic geometry of a parsed document
type Base struct {
	Width      *int
	Height     *int
	Aspect     float64
	Attributes Attributes
}

// Sizing holds the requested width and height
type Sizing struct {
	Width  Dimension
	Height Dimension
}

// Geometry is the outcome of reconciling a document with a sizing request
type Geometry struct {
	Width   *int
	Height  *int
	ViewBox string // empty when it could not be fully resolved

	// SetWidth and SetHeight mark dimensions produced by the request; they
	// must be written over whatever the base attributes carried.
	SetWidth  bool
	SetHeight bool
}

// Resolve reconciles the base width, height and viewBox with a sizing
// request. "auto" on one axis derives it from the other through the aspect
// ratio; "auto" on both axes passes the intrinsic size through unchanged.
func Resolve(base Base, s Sizing) Geometry {
	g := Geometry{
		Width:   copyInt(base.Width),
		Height:  copyInt(base.Height),
		ViewBox: base.Attributes[AttrViewBox],
	}

	if g.ViewBox == "" && g.Width != nil && g.Height != nil {
		g.ViewBox = fmt.Sprintf("0 0 %d %d", *g.Width, *g.Height)
	}

	w, h := s.Width, s.Height
	if w.Auto && h.Auto {
		w, h = fromInt(base.Width), fromInt(base.Height)
	}

	aspect := base.Aspect
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}

	switch {
	case w.Auto:
		if ref := literalOr(h, base.Height); ref != nil {
			g.Width = roundInt(float64(*ref) * aspect)
			g.SetWidth = g.Width != nil
		}
	case w.Px > 0:
		g.Width = &w.Px
		g.SetWidth = true
	}

	switch {
	case h.Auto:
		if ref := literalOr(w, base.Width); ref != nil {
			g.Height = roundInt(float64(*ref) / aspect)
			g.SetHeight = g.Height != nil
		}
	case h.Px > 0:
		g.Height = &h.Px
		g.SetHeight = true
	}

	if _, ok := ParseViewBox(g.ViewBox); !ok {
		g.ViewBox = ""
	}

	return g
}

// Apply returns a copy of attrs carrying the resolved geometry
func (g Geometry) Apply(attrs Attributes) Attributes {
	out := attrs.Clone()
	if g.SetWidth {
		out[AttrWidth] = strconv.Itoa(*g.Width)
	}
	if g.SetHeight {
		out[AttrHeight] = strconv.Itoa(*g.Height)
	}
	if g.ViewBox != "" {
		out[AttrViewBox] = g.ViewBox
	} else {
		delete(out, AttrViewBox)
	}
	return out
}

func literalOr(d Dimension, fallback *int) *int {
	if d.Px > 0 {
		n := d.Px
		return &n
	}
	return copyInt(fallback)
}

func fromInt(n *int) Dimension {
	if n == nil {
		return Dimension{}
	}
	return Px(*n)
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func roundInt(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	if n <= 0 {
		return nil
	}
	return &n
}
