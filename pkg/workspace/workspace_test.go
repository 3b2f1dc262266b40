package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv(ConfigEnv, "")

	ws, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"root", ws.RootPath, filepath.Join(base, "data", "sx")},
		{"library", ws.LibraryPath, filepath.Join(base, "data", "sx", "svg")},
		{"cache", ws.CachePath, filepath.Join(base, "cache", "sx")},
		{"config", ws.ConfigPath, filepath.Join(base, "config", "sx", "config.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s path = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestNew_ConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(ConfigEnv, path)

	ws, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if ws.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", ws.ConfigPath, path)
	}
}

func TestWorkspace_InitializeAndClean(t *testing.T) {
	root := t.TempDir()
	ws := &Workspace{
		RootPath:    filepath.Join(root, "data"),
		LibraryPath: filepath.Join(root, "data", "svg"),
		CachePath:   filepath.Join(root, "cache"),
	}

	if ws.Exists() {
		t.Fatal("Exists() = true before Initialize")
	}
	if n, err := ws.CleanCache(); err != nil || n != 0 {
		t.Errorf("CleanCache() on missing dir = %d, %v", n, err)
	}

	if err := ws.Initialize(); err != nil {
		t.Fatalf("Initialize() unexpected error: %v", err)
	}
	if !ws.Exists() {
		t.Fatal("Exists() = false after Initialize")
	}

	if err := os.WriteFile(ws.GetCachePath("cache.db"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write cache file: %v", err)
	}
	if err := os.MkdirAll(ws.GetCachePath("entries"), 0755); err != nil {
		t.Fatalf("failed to create cache dir: %v", err)
	}

	n, err := ws.CleanCache()
	if err != nil {
		t.Fatalf("CleanCache() unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("CleanCache() removed %d entries, want 2", n)
	}

	entries, _ := os.ReadDir(ws.CachePath)
	if len(entries) != 0 {
		t.Errorf("cache directory still has %d entries", len(entries))
	}
}

func TestWorkspace_GetCachePath(t *testing.T) {
	ws := &Workspace{CachePath: "/test/cache"}
	if got := ws.GetCachePath("cache.db"); got != filepath.Join("/test/cache", "cache.db") {
		t.Errorf("GetCachePath(cache.db) = %q", got)
	}
}
