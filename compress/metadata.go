package compress

import (
	"bytes"

	"github.com/dlclark/regexp2"
	"github.com/klauspost/compress/gzip"

	"github.com/coderdayton/localmind/internal/rx"
)

var (
	tier1Patterns = []*rxPattern{
		compileNamed(`\blet me (?:think|check|verify)\b`),
		compileNamed(`\bhmm+\b`),
		compileNamed(`\bthe question asks\b`),
		compileNamed(`\bi (?:can|will)\b[^.!?]*\b(?:mention|note|add)\b`),
		compileNamed(`^(?:i think|i believe|just to confirm|to be sure)\b`),
	}
	tier2Patterns = []*rxPattern{
		compileNamed(`^(?:okay|ok|well|so|alright|right)\b[,]?`),
		compileNamed(`\bthat said\b`),
		compileNamed(`\blet me explain\b`),
		compileNamed(`\bit is worth\b`),
	}

	hedgeWordPattern    = rx.Compile(`\b(?:basically|literally|actually|you know|i mean|really|very|quite|rather|somewhat)\b\s*`)
	backtickSpanPattern = rx.Compile("`[^`]*`")

	pronounStart    = rx.Compile(`^(?:he|she|it|they|this|that|these|those|such)\b`)
	connectiveStart = rx.Compile(`^(?:therefore|thus|hence|so,|however|but|although|yet|consequently|while|whereas|unless|until)\b`)
)

// rxPattern wraps one compiled filler-tier pattern.
type rxPattern struct {
	re *regexp2.Regexp
}

func compileNamed(pattern string) *rxPattern {
	return &rxPattern{re: rx.Compile(pattern)}
}

func classifyFillerTier(s string) fillerTier {
	for _, p := range tier1Patterns {
		if rx.MatchString(p.re, s) {
			return tierStrong
		}
	}
	for _, p := range tier2Patterns {
		if rx.MatchString(p.re, s) {
			return tierStylistic
		}
	}
	return tierNone
}

// isCodeHeavy implements stage 3's auto-keep code-heavy rule: inline
// backtick coverage over 40%, or symbol density over 25% on sentences of
// at least 20 characters.
func isCodeHeavy(s string) bool {
	if len(s) == 0 {
		return false
	}
	backtickChars := 0
	for _, m := range rx.FindAllStrings(backtickSpanPattern, s) {
		backtickChars += len(m)
	}
	if float64(backtickChars)/float64(len(s)) > 0.4 {
		return true
	}
	if len(s) < 20 {
		return false
	}
	symbols := 0
	for _, r := range s {
		if isSymbolRune(r) {
			symbols++
		}
	}
	return float64(symbols)/float64(len(s)) > 0.25
}

func isSymbolRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return false
	case r == ' ':
		return false
	default:
		return true
	}
}

// ncdCache memoizes gzip sizes for stage 3's NCD computation so each
// distinct string is only compressed once per Compress call.
type ncdCache struct {
	sizes map[string]int
}

func newNCDCache() *ncdCache {
	return &ncdCache{sizes: make(map[string]int)}
}

func (c *ncdCache) gzipSize(s string) int {
	if n, ok := c.sizes[s]; ok {
		return n
	}
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, _ = w.Write([]byte(s))
	_ = w.Close()
	n := buf.Len()
	c.sizes[s] = n
	return n
}

// ncd computes the normalized compression distance between a and b via
// gzip, bounded to [0,1] (spec.md §4.8 step 3).
func (c *ncdCache) ncd(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	ca, cb, cab := c.gzipSize(a), c.gzipSize(b), c.gzipSize(a+b)
	minC, maxC := ca, cb
	if cb < ca {
		minC, maxC = cb, ca
	}
	if maxC == 0 {
		return 0
	}
	v := float64(cab-minC) / float64(maxC)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}

// buildSentences implements stage 3: splits text, then attaches metadata
// to every non-code-placeholder sentence.
func buildSentences(rawText, query string) []sentence {
	raw := splitSentences(rawText)
	cache := newNCDCache()
	out := make([]sentence, 0, len(raw))
	for i, text := range raw {
		s := sentence{index: i, text: text}
		switch {
		case containsCodePlaceholder(text):
			s.isCode = true
		case isCodeHeavy(text):
			s.isCode = true
		case rx.MatchString(headerOrListLine, text):
			s.isCode = true
		default:
			s.tier = classifyFillerTier(text)
			s.ncd = cache.ncd(text, query)
			s.pronoun = rx.MatchString(pronounStart, text)
			s.connective = rx.MatchString(connectiveStart, text)
			s.entities = extractEntities(text)
		}
		out = append(out, s)
	}
	return out
}

// stripFillerWords removes inline hedges and a leading stylistic wrapper,
// used when rewriting a kept sentence (stage 8) rather than dropping it.
func stripFillerWords(s string) string {
	cleaned := rx.ReplaceAll(hedgeWordPattern, s, "")
	for _, p := range tier2Patterns {
		cleaned = rx.ReplaceAll(p.re, cleaned, "")
	}
	return collapseSpaces(cleaned)
}
