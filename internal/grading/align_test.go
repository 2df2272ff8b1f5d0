package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordSetCollapsesDuplicates(t *testing.T) {
	s := WordsOf("the cat saw the dog")
	assert.Equal(t, []string{"the", "cat", "saw", "dog"}, s.Words())
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has("dog"))
	assert.False(t, s.Has("cow"))
}

func TestAlign(t *testing.T) {
	al := Align(WordsOf("the dog runs fast"), WordsOf("dog run fast quickly"), FunctionWords)
	assert.Equal(t, 2, al.Matched)
	assert.Equal(t, 4, al.Total)
	assert.Equal(t, []Typo{{Got: "run", Want: "runs"}}, al.Typos)
	assert.Equal(t, []string{"the"}, al.MissingFunction)
	assert.Empty(t, al.MissingContent)
	assert.Equal(t, []string{"quickly"}, al.Extra)
	assert.Equal(t, 3, al.Credited())
}

func TestAlignTypoFirstMatchWins(t *testing.T) {
	al := Align(WordsOf("cat"), WordsOf("bat cot"), FunctionWords)
	assert.Equal(t, []Typo{{Got: "bat", Want: "cat"}}, al.Typos)
	assert.Equal(t, []string{"cot"}, al.Extra)
}

func TestAlignEachExtraPairsOnce(t *testing.T) {
	al := Align(WordsOf("cat hat"), WordsOf("cot"), FunctionWords)
	assert.Equal(t, []Typo{{Got: "cot", Want: "cat"}}, al.Typos)
	assert.Equal(t, []string{"hat"}, al.MissingContent)
	assert.Empty(t, al.Extra)
}

func TestAlignDistanceLimit(t *testing.T) {
	al := Align(WordsOf("apple"), WordsOf("banana"), FunctionWords)
	assert.Empty(t, al.Typos)
	assert.Equal(t, []string{"apple"}, al.MissingContent)
	assert.Equal(t, []string{"banana"}, al.Extra)
}

func TestAlignIsDeterministic(t *testing.T) {
	first := Align(WordsOf("a b c d e"), WordsOf("ab bc cd de"), FunctionWords)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Align(WordsOf("a b c d e"), WordsOf("ab bc cd de"), FunctionWords))
	}
}
