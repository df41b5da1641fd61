package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsCompression(t *testing.T) {
	t.Run("short text never needs compression", func(t *testing.T) {
		analysis := NeedsCompression("Just a short sentence.", "")
		assert.False(t, analysis.ShouldCompress)
	})

	t.Run("long repetitive text needs compression", func(t *testing.T) {
		sentence := "The system processes the request and then processes the response again. "
		text := strings.Repeat(sentence, 40)
		analysis := NeedsCompression(text, "request")
		assert.True(t, analysis.ShouldCompress)
		assert.NotEmpty(t, analysis.Reasons)
	})
}
