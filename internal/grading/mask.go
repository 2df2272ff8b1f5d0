package grading

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Hint describes one blanked keyword of a presented sentence.
type Hint struct {
	Word string `json:"word"` // surface form as written in the sentence
	Mask string `json:"mask"`
}

// Mask blanks every keyword out of sentence and returns one hint per keyword
// found, in keyword order. Keywords are matched case-insensitively on word
// boundaries, where letters and digits of any script count as word
// characters; keywords that do not occur are skipped.
func Mask(sentence string, keywords []string) (string, []Hint) {
	masked := sentence
	hints := make([]Hint, 0, len(keywords))
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
		found := wordSpans(re, sentence)
		if len(found) == 0 {
			continue
		}
		blank := strings.Repeat("_", utf8.RuneCountInString(kw))
		hints = append(hints, Hint{Word: sentence[found[0][0]:found[0][1]], Mask: blank})
		masked = replaceSpans(masked, wordSpans(re, masked), blank)
	}
	return masked, hints
}

// wordSpans returns the non-overlapping matches of re in s that start and
// end on a word boundary.
func wordSpans(re *regexp.Regexp, s string) [][2]int {
	var spans [][2]int
	for pos := 0; pos < len(s); {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if wordBoundary(s, start) && wordBoundary(s, end) {
			spans = append(spans, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	return spans
}

func replaceSpans(s string, spans [][2]int, with string) string {
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp[0]])
		b.WriteString(with)
		last = sp[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// wordBoundary reports whether exactly one side of byte offset i is a word
// character.
func wordBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
