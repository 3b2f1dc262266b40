package svg

import (
	"fmt"
	"strings"
)

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Wrap serializes inner content inside an <svg> element. Only the
// recognised attributes are written, always in AttributeOrder, followed by
// the SVG namespace. Keys must match the canonical casing exactly.
func Wrap(inner string, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString("<svg")
	for _, name := range AttributeOrder {
		if v := attrs[name]; v != "" {
			fmt.Fprintf(&b, ` %s="%s"`, name, attrEscaper.Replace(v))
		}
	}
	fmt.Fprintf(&b, ` xmlns="%s">`, Namespace)
	b.WriteString(inner)
	b.WriteString("</svg>")
	return b.String()
}

// Symbol wraps inner content as a sprite <symbol>
func Symbol(id, viewBox, inner string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<symbol id="%s"`, attrEscaper.Replace(id))
	if viewBox != "" {
		fmt.Fprintf(&b, ` viewBox="%s"`, attrEscaper.Replace(viewBox))
	}
	b.WriteString(">")
	b.WriteString(inner)
	b.WriteString("</symbol>")
	return b.String()
}

// UseRef returns markup referencing a sprite symbol by id
func UseRef(id string) string {
	id = attrEscaper.Replace(id)
	return fmt.Sprintf(`<svg class="%[1]s"><use xlink:href="#%[1]s" href="#%[1]s" /></svg>`, id)
}

// Sprite wraps symbols in a hidden root element. No symbols, no document.
func Sprite(symbols []string) string {
	if len(symbols) == 0 {
		return ""
	}
	return fmt.Sprintf("<svg xmlns=\"%s\" style=\"display: none;\">\n%s\n</svg>\n", Namespace, strings.Join(symbols, "\n"))
}
