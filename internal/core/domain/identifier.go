package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentSeparator joins path segments inside an identifier
const SegmentSeparator = "__"

// ReservedPrefix marks internal bookkeeping keys that never name an asset
const ReservedPrefix = "_"

// NormalizeKey converts a file-relative path or a lookup string into an
// identifier. "social/icon.svg" and "social__icon" both become
// "social__icon". Normalizing an identifier returns it unchanged.
//
// All-caps words are not special-cased: "ALLCAPS" becomes "aLLCAPS".
func NormalizeKey(key string) string {
	if key == "" {
		return ""
	}

	if len(key) >= 4 && strings.EqualFold(key[len(key)-4:], ".svg") {
		key = key[:len(key)-4]
	}

	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.ReplaceAll(key, "/", SegmentSeparator)

	segments := strings.Split(key, SegmentSeparator)
	for i, seg := range segments {
		segments[i] = camelCase(seg)
	}
	return strings.Join(segments, SegmentSeparator)
}

// IsReserved reports whether key uses the internal bookkeeping prefix
func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}

func camelCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		b.WriteString(w[size:])
	}
	return b.String()
}
