package domain

import (
	"strings"

	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

// Overrides are the caller-supplied render options for one lookup
type Overrides struct {
	Width  svg.Dimension
	Height svg.Dimension
	Class  string
	ID     string
}

// ParseOverrides filters raw request parameters. Width and height accept a
// positive integer or "auto"; anything else is dropped, as are unknown keys.
func ParseOverrides(params map[string]string) Overrides {
	var o Overrides
	for key, value := range params {
		switch strings.ToLower(key) {
		case svg.AttrWidth:
			if d, ok := svg.ParseDimension(value); ok {
				o.Width = d
			}
		case svg.AttrHeight:
			if d, ok := svg.ParseDimension(value); ok {
				o.Height = d
			}
		case svg.AttrClass:
			o.Class = strings.TrimSpace(value)
		case svg.AttrID:
			o.ID = strings.TrimSpace(value)
		}
	}
	return o
}

// IsZero reports whether no override was given
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Sizing returns the width/height part of the overrides
func (o Overrides) Sizing() svg.Sizing {
	return svg.Sizing{Width: o.Width, Height: o.Height}
}

// Params returns the overrides as request parameters, omitting unset ones
func (o Overrides) Params() map[string]string {
	params := make(map[string]string)
	if o.Width.IsSet() {
		params[svg.AttrWidth] = o.Width.String()
	}
	if o.Height.IsSet() {
		params[svg.AttrHeight] = o.Height.String()
	}
	if o.Class != "" {
		params[svg.AttrClass] = o.Class
	}
	if o.ID != "" {
		params[svg.AttrID] = o.ID
	}
	return params
}

// Key is a canonical string form used for memoization
func (o Overrides) Key() string {
	return strings.Join([]string{o.Width.String(), o.Height.String(), o.Class, o.ID}, "\x1f")
}
