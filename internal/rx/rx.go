// Package rx provides small regexp2 helpers shared by the derivation and
// compression engines, both of which need lookahead/lookbehind patterns
// that the standard library's RE2 engine cannot express.
package rx

import (
	"github.com/dlclark/regexp2"
)

// Compile panics on an invalid pattern; patterns in this module are fixed
// constants vetted at write time, not user input.
func Compile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.IgnoreCase)
	if err != nil {
		panic("rx: invalid pattern " + pattern + ": " + err.Error())
	}
	return re
}

// CompileCase is Compile without the IgnoreCase flag.
func CompileCase(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		panic("rx: invalid pattern " + pattern + ": " + err.Error())
	}
	return re
}

// MatchString reports whether re matches anywhere in s.
func MatchString(re *regexp2.Regexp, s string) bool {
	m, err := re.FindStringMatch(s)
	return err == nil && m != nil
}

// Split breaks s at every match of re, regexp2 has no native Split.
func Split(re *regexp2.Regexp, s string) []string {
	var out []string
	pos := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		start := m.Index
		end := m.Index + m.Length
		if start < pos {
			// Overlapping/empty match at the same position; advance to avoid looping.
			m, err = re.FindNextMatch(m)
			continue
		}
		out = append(out, s[pos:start])
		pos = end
		m, err = re.FindNextMatch(m)
	}
	out = append(out, s[pos:])
	return out
}

// SplitIndices returns the [start,end) byte ranges of the segments Split
// would return, letting callers recover each segment's position in s.
func SplitIndices(re *regexp2.Regexp, s string) [][2]int {
	var out [][2]int
	pos := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		start := m.Index
		end := m.Index + m.Length
		if start < pos {
			m, err = re.FindNextMatch(m)
			continue
		}
		out = append(out, [2]int{pos, start})
		pos = end
		m, err = re.FindNextMatch(m)
	}
	out = append(out, [2]int{pos, len(s)})
	return out
}

// FindAllStrings returns every non-overlapping match of re in s.
func FindAllStrings(re *regexp2.Regexp, s string) []string {
	var out []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}

// ReplaceAll substitutes every match of re in s with repl, which may use
// `${name}` backreferences exactly as regexp2.Replace supports.
func ReplaceAll(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}
