package domain

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "arrow", "arrow"},
		{"extension stripped", "arrow.svg", "arrow"},
		{"extension any case", "arrow.SVG", "arrow"},
		{"only one extension stripped", "diff.svg.svg", "diffSvg"},
		{"subdirectory", "social/icon.svg", "social__icon"},
		{"already normalized", "social__icon", "social__icon"},
		{"nested dash case", "sub/dir/nested-file", "sub__dir__nestedFile"},
		{"nested normalized", "sub__dir__nestedFile", "sub__dir__nestedFile"},
		{"camel case kept", "camelCase", "camelCase"},
		{"dash case", "dash-case", "dashCase"},
		{"dot case", "dot.case", "dotCase"},
		{"snake case", "snake_case", "snakeCase"},
		{"spaces", "omg spaces", "omgSpaces"},
		{"leading capital lowered", "Arrow", "arrow"},
		{"all caps degrade", "ALLCAPS", "aLLCAPS"},
		{"windows separators", `social\icon.svg`, "social__icon"},
		{"repeated boundaries", "a--b__c", "aB__c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeKey(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	inputs := []string{
		"", "arrow", "social/icon.svg", "sub/dir/nested-file.SVG", "ALLCAPS",
		"omg spaces", "a___b", "___", "_____", "-x-", "x.svg.svg", "über-icon",
		"a//b", "/leading", "trailing/", "dot.case.svg", "ÉCLAIR", "\xff",
	}

	for _, in := range inputs {
		once := NormalizeKey(in)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"_from_cache", true},
		{"_processing_time", true},
		{"__icon", true},
		{"icon", false},
		{"social__icon", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsReserved(tt.key); got != tt.expected {
			t.Errorf("IsReserved(%q) = %v, want %v", tt.key, got, tt.expected)
		}
	}
}
