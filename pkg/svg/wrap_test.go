package svg

import (
	"strings"
	"testing"
)

func TestWrap_AllowList(t *testing.T) {
	got := Wrap("", map[string]string{"frog": "kermit", "width": "55"})

	if !strings.Contains(got, `width="55"`) {
		t.Errorf("Wrap() = %q, missing width", got)
	}
	for _, banned := range []string{"frog", "kermit"} {
		if strings.Contains(got, banned) {
			t.Errorf("Wrap() = %q, should not contain %q", got, banned)
		}
	}
}

func TestWrap_AttributeOrder(t *testing.T) {
	got := Wrap("", map[string]string{
		"height":  "12",
		"viewBox": "0 2 11 22",
		"class":   "bar",
		"width":   "55",
		"id":      "foo",
	})

	want := `<svg id="foo" class="bar" width="55" height="12" viewBox="0 2 11 22" xmlns="http://www.w3.org/2000/svg"></svg>`
	if got != want {
		t.Errorf("Wrap() =\n%s\nwant\n%s", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		attrs map[string]string
		want  string
	}{
		{
			name: "empty attributes",
			want: `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
		{
			name:  "wrong casing dropped",
			attrs: map[string]string{"viewbox": "0 0 1 1", "ID": "x"},
			want:  `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
		{
			name:  "values escaped",
			inner: "<g/>",
			attrs: map[string]string{"class": `a"b<c`},
			want:  `<svg class="a&quot;b&lt;c" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
		},
		{
			name:  "empty value skipped",
			attrs: map[string]string{"id": "", "height": "48", "viewBox": "0 0 36 48"},
			want:  `<svg height="48" viewBox="0 0 36 48" xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.inner, tt.attrs); got != tt.want {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbolAndUseRef(t *testing.T) {
	if got := Symbol("arrow", "0 0 8 8", "<path/>"); got != `<symbol id="arrow" viewBox="0 0 8 8"><path/></symbol>` {
		t.Errorf("Symbol() = %q", got)
	}
	if got := Symbol("dot", "", ""); got != `<symbol id="dot"></symbol>` {
		t.Errorf("Symbol() without viewBox = %q", got)
	}

	want := `<svg class="arrow"><use xlink:href="#arrow" href="#arrow" /></svg>`
	if got := UseRef("arrow"); got != want {
		t.Errorf("UseRef() = %q, want %q", got, want)
	}
}

func TestSprite(t *testing.T) {
	if got := Sprite(nil); got != "" {
		t.Errorf("Sprite(nil) = %q, want empty", got)
	}

	got := Sprite([]string{"<symbol id=\"a\"></symbol>", "<symbol id=\"b\"></symbol>"})
	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" style="display: none;">`) {
		t.Errorf("Sprite() has unexpected root: %q", got)
	}
	if strings.Index(got, `id="a"`) > strings.Index(got, `id="b"`) {
		t.Errorf("Sprite() reordered symbols: %q", got)
	}
}
