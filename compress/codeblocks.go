package compress

import (
	"fmt"
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

var fencedBlockPattern = rx.Compile("```[\\s\\S]*?```|~~~[\\s\\S]*?~~~")

const codePlaceholderFmt = "\x00CODE%d\x00"

// extractCodeBlocks replaces every fenced code block with an opaque
// placeholder and returns the blocks in encounter order, so stage 9 can
// splice them back byte-identical (Testable Property 6).
func extractCodeBlocks(text string) (string, []string) {
	blocks := rx.FindAllStrings(fencedBlockPattern, text)
	if len(blocks) == 0 {
		return text, nil
	}
	out := text
	for i, block := range blocks {
		out = strings.Replace(out, block, fmt.Sprintf(codePlaceholderFmt, i), 1)
	}
	return out, blocks
}

func reinsertCodeBlocks(text string, blocks []string) string {
	out := text
	for i, block := range blocks {
		out = strings.Replace(out, fmt.Sprintf(codePlaceholderFmt, i), block, 1)
	}
	return out
}

func placeholderFor(index int) string {
	return fmt.Sprintf(codePlaceholderFmt, index)
}

func containsCodePlaceholder(s string) bool {
	return strings.Contains(s, "\x00CODE")
}
