package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**Spicy** ramen\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Spicy</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "Fish & Chips", svc.StripTags("  Fish & Chips "))
	assert.Equal(t, "Soup", svc.StripTags("<b>Soup</b><script>x()</script>"))
	assert.Equal(t, "*bold* text", svc.StripTags("*bold* text"))
}
