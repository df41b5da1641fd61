package compress

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
	pkgtext "github.com/coderdayton/localmind/pkg/text"
)

var (
	sentenceBoundary = rx.Compile(`(?<=[.!?])\s+`)
	dottedAbbrev     = rx.Compile(`(?:[a-z]\.){2,}$`)
)

var abbreviations = map[string]bool{
	"dr": true, "mr": true, "mrs": true, "ms": true, "etc": true,
	"fig": true, "approx": true, "vs": true, "no": true, "st": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true,
}

// endsWithAbbreviation reports whether the trailing word of s (before the
// punctuation that triggered a sentence-boundary split) is a known
// abbreviation, so the split should be undone and the next segment merged.
func endsWithAbbreviation(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	last := fields[len(fields)-1]
	bare := strings.ToLower(strings.TrimRight(last, "."))
	if abbreviations[bare] {
		return true
	}
	return rx.MatchString(dottedAbbrev, last)
}

// splitSentences implements stage 2. It first splits text into lines so a
// markdown header or list marker becomes its own sentence rather than
// fusing with the following prose (headers rarely end in [.!?], so the
// boundary regex alone would merge them); runs of ordinary prose lines are
// rejoined and handed to splitSentenceBoundaries as before.
func splitSentences(text string) []string {
	lines := pkgtext.Lines(text)
	var out []string
	var buf []string
	flush := func() {
		if len(buf) == 0 {
			return
		}
		out = append(out, splitSentenceBoundaries(strings.Join(buf, " "))...)
		buf = buf[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if rx.MatchString(headerOrListLine, trimmed) {
			flush()
			out = append(out, trimmed)
			continue
		}
		buf = append(buf, trimmed)
	}
	flush()
	return out
}

// splitSentenceBoundaries splits on sentence-ending punctuation, then
// re-merges any split caused by an abbreviation rather than a true boundary.
func splitSentenceBoundaries(text string) []string {
	raw := rx.Split(sentenceBoundary, text)
	var out []string
	pending := ""
	for i, seg := range raw {
		if pending != "" {
			seg = pending + " " + strings.TrimLeft(seg, " \t\n")
			pending = ""
		}
		trimmedRight := strings.TrimRight(seg, " \t\n")
		if i < len(raw)-1 && endsWithAbbreviation(trimmedRight) {
			pending = trimmedRight
			continue
		}
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if pending != "" {
		if trimmed := strings.TrimSpace(pending); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
