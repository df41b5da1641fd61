// Package text provides small line-oriented text helpers shared by the
// derivation and compression engines.
package text

import (
	"bufio"
	"strings"
)

// Lines splits the input text into separate lines.
// It returns:
//   - An array with a single empty string if the input is empty or contains only whitespace
//   - An array of strings representing each line in the original text otherwise
//
// Each line in the returned array does not include line terminators (\n, \r\n).
func Lines(inputText string) []string {
	if strings.TrimSpace(inputText) == "" {
		return []string{""}
	}

	scanner := bufio.NewScanner(strings.NewReader(inputText))
	lines := make([]string, 0)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}
