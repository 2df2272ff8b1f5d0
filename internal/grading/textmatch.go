package grading

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// numberWords maps the standalone numerals 0..20 to their spoken form.
var numberWords = map[string]string{
	"0": "zero", "1": "one", "2": "two", "3": "three", "4": "four",
	"5": "five", "6": "six", "7": "seven", "8": "eight", "9": "nine",
	"10": "ten", "11": "eleven", "12": "twelve", "13": "thirteen",
	"14": "fourteen", "15": "fifteen", "16": "sixteen", "17": "seventeen",
	"18": "eighteen", "19": "nineteen", "20": "twenty",
}

// Normalize canonicalizes text: lower-case, numerals
// 0..20 spelled out, everything outside [a-z0-9] and whitespace dropped,
// whitespace collapsed to single spaces.
//
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	text = spellNumerals(text)
	return strings.Join(strings.Fields(stripMarks(text)), " ")
}

// normalizeLight is the form Score compares: lower-case with marks dropped.
// Numerals stay digits.
func normalizeLight(text string) string {
	return strings.TrimSpace(stripMarks(strings.ToLower(text)))
}

// stripMarks keeps ASCII lower-case letters, ASCII digits and whitespace.
func stripMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keptRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keptRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// spellNumerals replaces digit runs that form a whole token. A neighbour
// only blocks the replacement when it survives stripMarks, so a numeral
// that becomes standalone after stripping is already spelled out.
func spellNumerals(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] < '0' || s[i] > '9' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		run := s[i:j]
		if word, ok := numberWords[run]; ok && !keptBefore(s, i) && !keptAfter(s, j) {
			b.WriteString(word)
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

func keptBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return keptRune(r)
}

func keptAfter(s string, j int) bool {
	if j >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[j:])
	return keptRune(r)
}

// levenshtein computes edit distance (insertion, deletion, substitution cost 1).
func levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}
