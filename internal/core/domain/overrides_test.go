package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]string
		expected Overrides
	}{
		{
			name:     "good values",
			params:   map[string]string{"width": "AUTO", "height": "123", "class": "red green blue"},
			expected: Overrides{Width: svg.Auto, Height: svg.Px(123), Class: "red green blue"},
		},
		{
			name:     "bad dimensions dropped",
			params:   map[string]string{"width": "2d20", "height": "-25"},
			expected: Overrides{},
		},
		{
			name:     "unknown keys dropped",
			params:   map[string]string{"frog": "kermit", "id": "logo"},
			expected: Overrides{ID: "logo"},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: Overrides{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOverrides(tt.params)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseOverrides() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOverrides_ParamsRoundTrip(t *testing.T) {
	o := Overrides{Width: svg.Auto, Height: svg.Px(40), Class: "icon"}

	if got := ParseOverrides(o.Params()); got != o {
		t.Errorf("ParseOverrides(Params()) = %+v, want %+v", got, o)
	}
	if !(Overrides{}).IsZero() {
		t.Error("zero overrides should report IsZero")
	}
	if o.Key() == (Overrides{Width: svg.Px(40), Height: svg.Auto, Class: "icon"}).Key() {
		t.Error("Key() should distinguish swapped dimensions")
	}
}
