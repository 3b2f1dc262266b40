package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineSource_Documents(t *testing.T) {
	src := NewInlineSource(map[string]string{
		"brand/logo.svg": `<svg width="120" height="40"><text>x</text></svg>`,
		"dot":            `<svg viewBox="0 0 8 8"><circle r="4"/></svg>`,
		"":               `<svg/>`,
	})

	docs, err := src.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "brand__logo", docs[0].Identifier)
	assert.Equal(t, "inline:brand/logo.svg", docs[0].SourcePath)
	assert.Equal(t, "dot", docs[1].Identifier)
	assert.True(t, docs[1].Valid())
}

func TestInlineSource_NameTracksContent(t *testing.T) {
	a := NewInlineSource(map[string]string{"dot": `<svg/>`})
	b := NewInlineSource(map[string]string{"dot": `<svg/>`})
	c := NewInlineSource(map[string]string{"dot": `<svg width="1"/>`})

	assert.Equal(t, a.Name(), b.Name())
	assert.NotEqual(t, a.Name(), c.Name())
}
