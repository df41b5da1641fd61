package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodeBlocks(t *testing.T) {
	t.Run("no code blocks returns text unchanged", func(t *testing.T) {
		stripped, blocks := extractCodeBlocks("just some prose.")
		assert.Equal(t, "just some prose.", stripped)
		assert.Empty(t, blocks)
	})

	t.Run("fenced block replaced with placeholder and recoverable", func(t *testing.T) {
		text := "Before.\n```js\nconsole.log(1)\n```\nAfter."
		stripped, blocks := extractCodeBlocks(text)
		assert.Len(t, blocks, 1)
		assert.Equal(t, "```js\nconsole.log(1)\n```", blocks[0])
		assert.Contains(t, stripped, placeholderFor(0))
		assert.NotContains(t, stripped, "console.log")

		reinserted := reinsertCodeBlocks(stripped, blocks)
		assert.Equal(t, text, reinserted)
	})

	t.Run("tilde fence is also extracted", func(t *testing.T) {
		text := "~~~\nplain block\n~~~"
		stripped, blocks := extractCodeBlocks(text)
		assert.Len(t, blocks, 1)
		assert.Equal(t, text, reinsertCodeBlocks(stripped, blocks))
	})
}
