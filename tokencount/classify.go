// Package tokencount implements the local compute engine's fast token
// estimator: a calibrated heuristic, never a real BPE tokenizer (spec.md §1
// explicitly excludes a model round trip from this library's scope).
package tokencount

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coderdayton/localmind/internal/rx"
)

// ContentType is the coarse category the estimator picks a chars/token
// ratio and blend weight from.
type ContentType int

const (
	Prose ContentType = iota
	Code
	URL
	Number
	CJK
	Mixed
)

func (c ContentType) String() string {
	switch c {
	case Prose:
		return "prose"
	case Code:
		return "code"
	case URL:
		return "url"
	case Number:
		return "number"
	case CJK:
		return "cjk"
	default:
		return "mixed"
	}
}

var (
	urlPattern         = rx.Compile(`https?://[^\s]+|www\.[^\s]+`)
	codeKeywordPattern = rx.Compile(`\b(?:func|function|def|class|import|package|const|var|let|return|struct|interface|public|private|static|void|lambda)\b`)
)

// isBracket backs the bracket density check; like the other density checks
// it runs over runes rather than bytes so multi-byte CJK text isn't over-counted.
func isBracket(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '<', '>':
		return true
	default:
		return false
	}
}

func isCJK(r rune) bool {
	return unicode.In(r,
		unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul,
	)
}

// densities walks text once and returns the rune counts Classify needs.
type densities struct {
	total    int
	alpha    int
	digit    int
	cjk      int
	bracket  int
	symbol   int
	urlChars int
}

// measure walks text once for its density counts. URL spans are stripped
// before the alpha/digit/bracket/symbol tally so a URL's own `://` and path
// separators don't masquerade as code symbols; they're counted separately
// via urlChars instead, against the same total length.
func measure(text string) densities {
	var d densities
	d.total = utf8.RuneCountInString(text)

	stripped := text
	for _, match := range rx.FindAllStrings(urlPattern, text) {
		d.urlChars += utf8.RuneCountInString(match)
		stripped = strings.Replace(stripped, match, "", 1)
	}

	for _, r := range stripped {
		switch {
		case isCJK(r):
			d.cjk++
		case unicode.IsLetter(r):
			d.alpha++
		case unicode.IsDigit(r):
			d.digit++
		case isBracket(r):
			d.bracket++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			d.symbol++
		}
	}
	return d
}

// Classify picks the dominant content type of text per spec.md §4.7's fixed
// threshold order: code, cjk, url, number, prose, else mixed.
func Classify(text string) ContentType {
	d := measure(text)
	if d.total == 0 {
		return Prose
	}
	total := float64(d.total)

	bracketDensity := float64(d.bracket) / total
	symbolDensity := float64(d.symbol) / total
	if (bracketDensity > 0.03 && rx.MatchString(codeKeywordPattern, text)) || symbolDensity > 0.08 {
		return Code
	}
	if float64(d.cjk)/total > 0.30 {
		return CJK
	}
	if float64(d.urlChars)/total > 0.50 {
		return URL
	}
	if float64(d.digit)/total > 0.50 {
		return Number
	}
	if float64(d.alpha)/total > 0.60 {
		return Prose
	}
	return Mixed
}
