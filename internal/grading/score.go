package grading

import (
	"strings"
	"unicode"
)

// PassThreshold is the similarity at or above which callers treat an answer
// as correct. Score itself never makes that decision.
const PassThreshold = 0.97

const (
	feedbackPerfect = "Perfect!"
	feedbackSpacing = "Spacing error - check for missing spaces between words"
	feedbackDefault = "Good attempt"

	spacingScore = 0.92
)

// MatchResult is the graded outcome of one answer.
type MatchResult struct {
	Similarity float64 `json:"similarity"`
	Feedback   string  `json:"feedback"`
}

// penalty is one step of the scoring reduction. Steps run in slice order and
// each one that applies scales the score and contributes one clause.
type penalty struct {
	applies func(Alignment) bool
	factor  float64
	clause  func(Alignment) string
}

var penalties = []penalty{
	{
		applies: func(a Alignment) bool { return len(a.Typos) > 0 },
		factor:  0.95,
		clause: func(a Alignment) string {
			pairs := make([]string, len(a.Typos))
			for i, t := range a.Typos {
				pairs[i] = t.String()
			}
			return "Typos: " + strings.Join(pairs, ", ")
		},
	},
	{
		applies: func(a Alignment) bool { return len(a.MissingFunction) > 0 },
		factor:  0.85,
		clause: func(a Alignment) string {
			return "Missing articles/auxiliaries: " + strings.Join(a.MissingFunction, ", ")
		},
	},
	{
		// any missing content word halves the score, however many there are
		applies: func(a Alignment) bool { return len(a.MissingContent) > 0 },
		factor:  0.5,
		clause: func(a Alignment) string {
			return "Missing key words: " + strings.Join(a.MissingContent, ", ")
		},
	},
	{
		applies: func(a Alignment) bool { return len(a.Extra) > 0 },
		factor:  0.9,
		clause: func(a Alignment) string {
			return "Extra words: " + strings.Join(a.Extra, ", ")
		},
	},
}

// Score grades candidate against reference. It is a pure function and safe
// for concurrent use.
func Score(reference, candidate string) MatchResult {
	ref := normalizeLight(reference)
	got := normalizeLight(candidate)
	if ref == got {
		return MatchResult{Similarity: 1.0, Feedback: feedbackPerfect}
	}
	if dropSpaces(ref) == dropSpaces(got) {
		return MatchResult{Similarity: spacingScore, Feedback: feedbackSpacing}
	}

	al := Align(WordsOf(ref), WordsOf(got), FunctionWords)
	return applyPenalties(baseScore(al), al)
}

func baseScore(al Alignment) float64 {
	if al.Total == 0 {
		return 0
	}
	return float64(al.Credited()) / float64(al.Total)
}

func applyPenalties(base float64, al Alignment) MatchResult {
	score := base
	var clauses []string
	for _, p := range penalties {
		if !p.applies(al) {
			continue
		}
		score *= p.factor
		clauses = append(clauses, p.clause(al))
	}
	feedback := feedbackDefault
	if len(clauses) > 0 {
		feedback = strings.Join(clauses, "; ")
	}
	return MatchResult{Similarity: min(score, 1.0), Feedback: feedback}
}

func dropSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
