package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks(t *testing.T) {
	t.Run("should return one block per card in document order", func(t *testing.T) {
		html := `<main>
			<div class='products__card'><div class="products__title">One</div></div>
			<p>between</p>
			<div class='products__card'><div><div class="products__title">Two</div></div></div>
			<div class='products__card'><div class="products__title">Three</div></div>
		</main>`

		blocks, err := ExtractBlocks(html, ProductCardSelector)
		require.NoError(t, err)
		require.Len(t, blocks, 3)
		assert.Contains(t, blocks[0], "One")
		assert.Contains(t, blocks[1], "Two")
		assert.Contains(t, blocks[2], "Three")
		for _, block := range blocks {
			assert.True(t, strings.HasPrefix(block, `<div class="products__card">`), block)
			assert.True(t, strings.HasSuffix(block, "</div>"), block)
			assert.NotContains(t, block, "between")
		}
	})

	t.Run("should keep nested matches inside their ancestor block", func(t *testing.T) {
		html := `<div class="products__card">outer<div class="products__card">inner</div></div>`

		blocks, err := ExtractBlocks(html, ProductCardSelector)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Contains(t, blocks[0], "outer")
		assert.Contains(t, blocks[0], "inner")
	})

	t.Run("should run an unclosed block to the end of the document", func(t *testing.T) {
		html := `<div class="products__card"><div class="products__title">Open</div><span>tail`

		blocks, err := ExtractBlocks(html, ProductCardSelector)
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Contains(t, blocks[0], "Open")
		assert.Contains(t, blocks[0], "tail")
	})

	t.Run("should return an empty slice when nothing matches", func(t *testing.T) {
		blocks, err := ExtractBlocks(`<div class="other">x</div>`, ProductCardSelector)
		require.NoError(t, err)
		assert.NotNil(t, blocks)
		assert.Empty(t, blocks)
	})
}
