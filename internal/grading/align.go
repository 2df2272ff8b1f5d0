package grading

import "strings"

// MaxTypoDistance is the largest edit distance at which a missing word and
// an extra word are treated as the same word misspelled.
const MaxTypoDistance = 2

// FunctionWords are the closed-class words whose omission costs less than
// a content word. "am" is included on purpose so that a dropped "am" is
// graded like any other missing auxiliary.
var FunctionWords = NewWordSet(
	"a", "an", "the",
	"am", "is", "are", "was", "were",
	"have", "has", "had",
	"do", "does", "did",
)

// WordSet is a set of words that remembers first-insertion order, so every
// walk over it is deterministic. Repeated words collapse to one entry.
type WordSet struct {
	order []string
	index map[string]struct{}
}

func NewWordSet(words ...string) WordSet {
	s := WordSet{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, ok := s.index[w]; ok {
			continue
		}
		s.index[w] = struct{}{}
		s.order = append(s.order, w)
	}
	return s
}

// WordsOf splits already-normalized text on whitespace.
func WordsOf(text string) WordSet { return NewWordSet(strings.Fields(text)...) }

func (s WordSet) Has(w string) bool {
	_, ok := s.index[w]
	return ok
}

func (s WordSet) Len() int { return len(s.order) }

// Words returns the members in insertion order.
func (s WordSet) Words() []string { return append([]string(nil), s.order...) }

// Minus returns the members of s absent from o, in s's order.
func (s WordSet) Minus(o WordSet) []string {
	var out []string
	for _, w := range s.order {
		if !o.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Intersect counts the members shared by s and o.
func (s WordSet) Intersect(o WordSet) int {
	n := 0
	for _, w := range s.order {
		if o.Has(w) {
			n++
		}
	}
	return n
}

// Typo pairs a word the learner wrote with the reference word it stands for.
type Typo struct {
	Got  string `json:"got"`
	Want string `json:"want"`
}

func (t Typo) String() string { return t.Got + " → " + t.Want }

// Alignment is the word-level difference between a reference and an answer.
type Alignment struct {
	Matched         int // |correct ∩ user|, before typo pairing
	Total           int // |correct|
	Typos           []Typo
	MissingFunction []string
	MissingContent  []string
	Extra           []string
}

// Credited is the number of reference words accounted for by the answer:
// exact matches plus words recovered through typo pairing.
func (a Alignment) Credited() int { return a.Matched + len(a.Typos) }

// Align diffs the two word sets. Each missing word, in reference order, is
// paired with the first remaining extra word within MaxTypoDistance edits.
func Align(correct, user, function WordSet) Alignment {
	al := Alignment{
		Matched: correct.Intersect(user),
		Total:   correct.Len(),
	}
	missing := correct.Minus(user)
	extra := user.Minus(correct)

	var leftover []string
	for _, m := range missing {
		paired := false
		for j, e := range extra {
			if levenshtein(m, e) <= MaxTypoDistance {
				al.Typos = append(al.Typos, Typo{Got: e, Want: m})
				extra = append(extra[:j:j], extra[j+1:]...)
				paired = true
				break
			}
		}
		if !paired {
			leftover = append(leftover, m)
		}
	}

	for _, m := range leftover {
		if function.Has(m) {
			al.MissingFunction = append(al.MissingFunction, m)
		} else {
			al.MissingContent = append(al.MissingContent, m)
		}
	}
	al.Extra = extra
	return al
}
