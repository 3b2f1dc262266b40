package ui

import "testing"

func TestFormat_NoColorTheme(t *testing.T) {
	SetTheme("none")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"success", FormatSuccess("done"), IconSuccess + " done"},
		{"error", FormatError("failed"), IconError + " failed"},
		{"info", FormatInfo("note"), IconInfo + " note"},
		{"warning", FormatWarning("careful"), IconWarning + " careful"},
		{"muted", FormatMuted("quiet"), "quiet"},
		{"code", FormatCode("arrowLeft"), "arrowLeft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
