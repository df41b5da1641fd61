package compress

import (
	"strings"

	"github.com/coderdayton/localmind/internal/rx"
)

// phraseTable is the fixed phrase-replacement set applied before word-level
// filler stripping (stage 8).
var phraseTable = []struct{ from, to string }{
	{"in order to", "to"},
	{"due to the fact that", "because"},
	{"is able to", "can"},
	{"are able to", "can"},
	{"was able to", "could"},
	{"in the event that", "if"},
	{"at this point in time", "now"},
	{"for the purpose of", "for"},
	{"with regard to", "about"},
	{"with respect to", "about"},
	{"in spite of the fact that", "although"},
	{"on the grounds that", "because"},
	{"a large number of", "many"},
	{"a majority of", "most"},
	{"in the near future", "soon"},
	{"has the ability to", "can"},
	{"it is important to note that", ""},
	{"it should be noted that", ""},
	{"in a manner that", "so that"},
	{"by means of", "by"},
	{"in the process of", "while"},
	{"take into consideration", "consider"},
	{"make a decision", "decide"},
}

var reasoningConnectives = map[string]bool{
	"because": true, "therefore": true, "thus": true, "hence": true,
	"since": true, "if": true, "then": true, "however": true, "but": true,
	"although": true, "yet": true, "so": true, "consequently": true,
	"while": true, "whereas": true, "unless": true, "until": true,
	"whether": true, "not": true, "no": true, "and": true, "or": true,
}

var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"just": true, "quite": true, "rather": true, "very": true,
	"really": true, "somewhat": true, "simply": true,
	"is": true, "are": true, "was": true, "were": true, "been": true,
	"be": true, "am": true,
}

var (
	headerOrListLine = rx.Compile(`^(?:#{1,6}\s|[-*+]\s|\d+\.\s)`)
	spaceBeforePunct = rx.Compile(`\s+([.,!?;:])`)
	multiSpace       = rx.Compile(`\s{2,}`)
)

func applyPhraseTable(text string) string {
	lower := strings.ToLower(text)
	for _, pair := range phraseTable {
		for {
			idx := strings.Index(lower, pair.from)
			if idx < 0 {
				break
			}
			text = text[:idx] + pair.to + text[idx+len(pair.from):]
			lower = strings.ToLower(text)
		}
	}
	return text
}

func collapseSpaces(s string) string {
	s = rx.ReplaceAll(multiSpace, s, " ")
	s = rx.ReplaceAll(spaceBeforePunct, s, "$1")
	return strings.TrimSpace(s)
}

// telegraphicRewrite implements stage 8 for one kept, non-code sentence.
func telegraphicRewrite(text string) string {
	if rx.MatchString(headerOrListLine, text) {
		return text
	}
	rewritten := applyPhraseTable(text)

	words := strings.Fields(rewritten)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		bare := strings.ToLower(trimPunct(word))
		if isProtectedWord(word) || reasoningConnectives[bare] {
			kept = append(kept, word)
			continue
		}
		if fillerWords[bare] {
			continue
		}
		kept = append(kept, word)
	}
	return collapseSpaces(strings.Join(kept, " "))
}
