package compress

import (
	"strings"
	"unicode"

	"github.com/coderdayton/localmind/internal/rx"
	pkgsets "github.com/coderdayton/localmind/pkg/sets"
	pkgstrings "github.com/coderdayton/localmind/pkg/strings"
)

var (
	currencyPattern   = rx.Compile(`\$\d[\d,]*(?:\.\d+)?`)
	percentPattern    = rx.Compile(`\d+(?:\.\d+)?%`)
	numberUnitPattern = rx.Compile(`\d+(?:\.\d+)?\s?(?:kg|km|mph|gb|mb|kb|tb|lbs?|ft|m|s|hrs?|min|ms|cm|mi|oz)\b`)
	properNounPattern = rx.CompileCase(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)
	alnumCodePattern  = rx.CompileCase(`\b[A-Z]{1,3}\d+\b`)

	urlPattern     = rx.Compile(`https?://\S+|www\.\S+`)
	pathPattern    = rx.Compile(`(?:^|\s)(?:/[\w.\-]+){2,}|[A-Za-z]:\\[\w\\.\-]+`)
	datePattern    = rx.Compile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	versionPattern = rx.Compile(`\bv?\d+\.\d+(?:\.\d+)?\b`)
	modelIDPattern = rx.CompileCase(`\b[A-Za-z]+-\d[\w.\-]*\b`)
	slashTermPattern = rx.CompileCase(`\b\w+/\w+\b`)
)

// extractEntities implements the entity half of stage 3: currencies,
// numbers with units, percentages, Proper Noun runs, camelCase, ALL_CAPS,
// snake_case, and alphanumeric codes like Q3.
func extractEntities(text string) []string {
	found := pkgsets.NewLinkedSet[string]()
	lower := strings.ToLower(text)
	for _, m := range rx.FindAllStrings(currencyPattern, text) {
		found.Add(m)
	}
	for _, m := range rx.FindAllStrings(percentPattern, text) {
		found.Add(m)
	}
	for _, m := range rx.FindAllStrings(numberUnitPattern, lower) {
		found.Add(m)
	}
	for _, m := range rx.FindAllStrings(properNounPattern, text) {
		found.Add(m)
	}
	for _, m := range rx.FindAllStrings(alnumCodePattern, text) {
		found.Add(m)
	}
	for _, word := range strings.Fields(text) {
		bare := trimPunct(word)
		if bare == "" {
			continue
		}
		if isCamelCase(bare) || isSnakeCase(bare) || isAllCaps(bare) {
			found.Add(bare)
		}
	}
	return found.ToSlice()
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) && r != '_'
	})
}

// isCamelCase reports mixed-case words with a genuine camelCase boundary,
// confirmed via the same splitter used for identifier case conversion.
func isCamelCase(word string) bool {
	hasUpper, hasLower := false, false
	for _, r := range word {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return false
	}
	return len(pkgstrings.AsCamelCase(word).Split()) > 1
}

func isSnakeCase(word string) bool {
	if !strings.Contains(word, "_") {
		return false
	}
	if isAllCaps(word) {
		return false
	}
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters > 0
}

func isAllCaps(word string) bool {
	upper := 0
	for _, r := range word {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			return false
		}
	}
	return upper >= 2
}

func isNumericToken(word string) bool {
	if word == "" {
		return false
	}
	digits := false
	for _, r := range word {
		switch {
		case unicode.IsDigit(r):
			digits = true
		case r == '.' || r == ',' || r == '%' || r == '$' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return digits
}

// isProtectedWord reports whether word must pass through telegraphic
// rewrite unchanged (stage 8's protected-position list, word-level subset;
// markdown headers and list markers are checked at the sentence level).
func isProtectedWord(word string) bool {
	if word == "" {
		return false
	}
	if strings.HasPrefix(word, "`") && strings.HasSuffix(word, "`") && len(word) > 1 {
		return true
	}
	if rx.MatchString(urlPattern, word) {
		return true
	}
	if rx.MatchString(pathPattern, " "+word) {
		return true
	}
	if rx.MatchString(datePattern, word) {
		return true
	}
	if rx.MatchString(versionPattern, word) {
		return true
	}
	if rx.MatchString(modelIDPattern, word) {
		return true
	}
	if rx.MatchString(slashTermPattern, word) {
		return true
	}
	if rx.MatchString(numberUnitPattern, strings.ToLower(word)) {
		return true
	}
	bare := trimPunct(word)
	if isCamelCase(bare) || isSnakeCase(bare) || isAllCaps(bare) || isNumericToken(bare) {
		return true
	}
	return false
}
