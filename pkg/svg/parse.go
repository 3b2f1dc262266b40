package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parsed is the normalized form of one SVG source
type Parsed struct {
	Inner      string     // body between the root start and end tags
	Attributes Attributes // recognised root attributes only
	Width      *int
	Height     *int
	Aspect     float64
}

// ParseError carries the syntax diagnostics of a rejected document
type ParseError struct {
	Diagnostics []string
}

func (e *ParseError) Error() string {
	return "invalid svg: " + strings.Join(e.Diagnostics, "; ")
}

var (
	xmlDeclPattern  = regexp.MustCompile(`^\s*<\?xml[^>]*\?>`)
	encodingPattern = regexp.MustCompile(`encoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)
	lengthPattern   = regexp.MustCompile(`^\+?(\d+(?:\.\d*)?|\.\d+)(?:px)?$`)
)

// Parse decodes raw SVG markup. Malformed input returns a *ParseError and
// no partial result.
func Parse(raw string) (*Parsed, error) {
	body, err := decodeBody(strings.TrimSpace(raw))
	if err != nil {
		return nil, &ParseError{Diagnostics: []string{err.Error()}}
	}
	if strings.TrimSpace(body) == "" {
		return nil, &ParseError{Diagnostics: []string{"empty document"}}
	}

	var (
		diagnostics []string
		root        *xml.StartElement
		rootClosed  bool
		depth       int
		innerStart  int64
		innerEnd    int64
	)

	dec := xml.NewDecoder(strings.NewReader(body))
	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			diagnostics = append(diagnostics, describeSyntaxError(err))
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if root != nil {
					diagnostics = append(diagnostics, fmt.Sprintf("line %d: multiple root elements", lineAt(body, offset)))
				} else {
					el := t.Copy()
					root = &el
					innerStart = dec.InputOffset()
				}
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 && root != nil && !rootClosed {
				innerEnd = offset
				rootClosed = true
			}
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				diagnostics = append(diagnostics, fmt.Sprintf("line %d: content outside of the root element", lineAt(body, offset)))
			}
		}
	}

	if root == nil {
		diagnostics = append(diagnostics, "no root element")
	} else if root.Name.Local != "svg" {
		diagnostics = append(diagnostics, fmt.Sprintf("root element is <%s>, expected <svg>", root.Name.Local))
	}
	if len(diagnostics) > 0 {
		return nil, &ParseError{Diagnostics: diagnostics}
	}

	attrs := make(Attributes)
	for _, a := range root.Attr {
		if a.Name.Space != "" {
			continue
		}
		if name, ok := Canonical(a.Name.Local); ok {
			attrs[name] = a.Value
		}
	}

	p := &Parsed{
		Inner:      body[innerStart:innerEnd],
		Attributes: attrs,
		Width:      parseLength(attrs[AttrWidth]),
		Height:     parseLength(attrs[AttrHeight]),
		Aspect:     1,
	}

	if vb, ok := ParseViewBox(attrs[AttrViewBox]); ok {
		if p.Width == nil {
			p.Width = roundPositive(vb.Width)
		}
		if p.Height == nil {
			p.Height = roundPositive(vb.Height)
		}
	}

	if p.Width != nil && p.Height != nil {
		p.Aspect = float64(*p.Width) / float64(*p.Height)
	}

	return p, nil
}

// decodeBody removes the XML declaration and transcodes non UTF-8 input so
// that decoder offsets index the returned string.
func decodeBody(raw string) (string, error) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	decl := xmlDeclPattern.FindString(raw)
	if decl == "" {
		return raw, nil
	}
	body := raw[len(decl):]

	m := encodingPattern.FindStringSubmatch(decl)
	if m == nil || strings.EqualFold(m[1], "utf-8") || strings.EqualFold(m[1], "utf8") {
		return body, nil
	}

	r, err := charset.NewReaderLabel(m[1], strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", m[1], err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s content: %w", m[1], err)
	}
	return string(out), nil
}

func describeSyntaxError(err error) string {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return fmt.Sprintf("line %d: %s", syntax.Line, syntax.Msg)
	}
	return err.Error()
}

func lineAt(s string, offset int64) int {
	if offset > int64(len(s)) {
		offset = int64(len(s))
	}
	return strings.Count(s[:offset], "\n") + 1
}

// parseLength reads a plain or px length. Percentages, other units and
// non-positive values are treated as unknown.
func parseLength(s string) *int {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return roundPositive(f)
}

func roundPositive(f float64) *int {
	n := int(math.Round(f))
	if n <= 0 {
		return nil
	}
	return &n
}
