package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Namespace is written on every wrapped <svg> element
const Namespace = "http://www.w3.org/2000/svg"

// Recognised root attribute names, in their canonical casing
const (
	AttrID      = "id"
	AttrClass   = "class"
	AttrWidth   = "width"
	AttrHeight  = "height"
	AttrViewBox = "viewBox"
)

// AttributeOrder is the fixed emission order used by Wrap
var AttributeOrder = []string{AttrID, AttrClass, AttrWidth, AttrHeight, AttrViewBox}

// Attributes maps canonical attribute names to their values
type Attributes map[string]string

// Canonical maps an attribute name of any casing to its canonical form.
// Unrecognised names return false.
func Canonical(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, attr := range AttributeOrder {
		if strings.ToLower(attr) == lower {
			return attr, true
		}
	}
	return "", false
}

// Clone returns an independent copy
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Has reports whether the attribute is present with a non-empty value
func (a Attributes) Has(name string) bool {
	return a[name] != ""
}

// Dimension is a requested width or height: absent, a positive pixel
// value, or "auto". The zero value is absent.
type Dimension struct {
	Px   int
	Auto bool
}

// Auto requests a dimension derived from the aspect ratio
var Auto = Dimension{Auto: true}

// Px returns a literal dimension. Non-positive values are absent.
func Px(n int) Dimension {
	if n <= 0 {
		return Dimension{}
	}
	return Dimension{Px: n}
}

// ParseDimension accepts a positive integer or "auto" (any casing).
// Anything else is reported as not ok.
func ParseDimension(s string) (Dimension, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return Auto, true
	}
	if s == "" {
		return Dimension{}, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Dimension{}, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Dimension{}, false
	}
	return Dimension{Px: n}, true
}

// IsSet reports whether the dimension carries a value or "auto"
func (d Dimension) IsSet() bool {
	return d.Auto || d.Px > 0
}

func (d Dimension) String() string {
	switch {
	case d.Auto:
		return "auto"
	case d.Px > 0:
		return strconv.Itoa(d.Px)
	default:
		return ""
	}
}

// ViewBox is the four-component viewBox: min-x, min-y, width, height
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ParseViewBox parses "minX minY width height" with whitespace and/or comma
// separators. Anything that is not exactly four numbers is rejected.
func ParseViewBox(s string) (ViewBox, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return ViewBox{}, false
	}

	var nums [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, false
		}
		nums[i] = n
	}
	return ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, true
}

func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s", formatNumber(v.MinX), formatNumber(v.MinY), formatNumber(v.Width), formatNumber(v.Height))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
