package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func identifiers(t *testing.T, src *DirectorySource) map[string]string {
	t.Helper()
	docs, err := src.Documents(context.Background())
	require.NoError(t, err)

	out := make(map[string]string, len(docs))
	for _, doc := range docs {
		out[doc.Identifier] = doc.SourcePath
	}
	return out
}

func TestDirectorySource_Documents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "arrow-left.svg", `<svg width="10" height="10"><path/></svg>`)
	writeFile(t, root, "social/twitter.SVG", `<svg viewBox="0 0 24 24"><g/></svg>`)
	writeFile(t, root, "sub/dir/nested_file.svg", `<svg/>`)
	writeFile(t, root, "notes.txt", "not an svg")
	writeFile(t, root, "image.svgz", "compressed")

	src := NewDirectorySource(root, 2, nil)
	got := identifiers(t, src)

	assert.Len(t, got, 3)
	assert.Contains(t, got, "arrowLeft")
	assert.Contains(t, got, "social__twitter")
	assert.Contains(t, got, "sub__dir__nestedFile")
	assert.Equal(t, filepath.Join(root, "social", "twitter.SVG"), got["social__twitter"])
}

func TestDirectorySource_ParseErrorsKept(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "broken.svg", `<svg><g></svg>`)

	docs, err := NewDirectorySource(root, 1, nil).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "broken", docs[0].Identifier)
	assert.False(t, docs[0].Valid())
	assert.NotEmpty(t, docs[0].Errors)
}

func TestDirectorySource_Collisions(t *testing.T) {
	root := t.TempDir()
	// Both normalize to "iconSet"; the walk visits icon-set.svg first.
	writeFile(t, root, "icon-set.svg", `<svg width="1" height="1"/>`)
	writeFile(t, root, "icon_set.svg", `<svg width="2" height="2"/>`)

	docs, err := NewDirectorySource(root, 4, nil).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "iconSet", docs[0].Identifier)
	assert.Equal(t, "iconSet", docs[1].Identifier)
	assert.Equal(t, filepath.Join(root, "icon_set.svg"), docs[1].SourcePath)
}

func TestDirectorySource_ReservedIdentifier(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "__icon.svg", `<svg width="1" height="1"/>`)
	writeFile(t, root, "_x.svg", `<svg width="1" height="1"/>`)

	core, logs := observer.New(zap.WarnLevel)
	docs, err := NewDirectorySource(root, 1, zap.New(core)).Documents(context.Background())
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "x", docs[0].Identifier)

	skipped := logs.FilterMessage("Skipping svg with a reserved identifier").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "__icon", skipped[0].ContextMap()["identifier"])
	assert.Equal(t, filepath.Join(root, "__icon.svg"), skipped[0].ContextMap()["path"])
}

func TestDirectorySource_MissingRoot(t *testing.T) {
	tests := []struct {
		name string
		root func(t *testing.T) string
	}{
		{
			name: "missing directory",
			root: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
		},
		{
			name: "root is a file",
			root: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "file.svg", `<svg/>`)
				return filepath.Join(dir, "file.svg")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := NewDirectorySource(tt.root(t), 0, nil).Documents(context.Background())
			assert.NoError(t, err)
			assert.Empty(t, docs)
		})
	}
}

func TestDirectorySource_Cancelled(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.svg", "b.svg", "c.svg"} {
		writeFile(t, root, name, `<svg/>`)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectorySource(root, 1, nil).Documents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirectorySource_Name(t *testing.T) {
	root := t.TempDir()
	src := NewDirectorySource(root, 0, nil)
	assert.Equal(t, "dir:"+root, src.Name())
	assert.Equal(t, root, src.Root())
}

func TestIsSVG(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.svg", true},
		{"a.SVG", true},
		{"dir/a.Svg", true},
		{"a.svgz", false},
		{"svg", false},
		{"a.png", false},
	}
	for _, tt := range tests {
		if got := IsSVG(tt.path); got != tt.want {
			t.Errorf("IsSVG(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
