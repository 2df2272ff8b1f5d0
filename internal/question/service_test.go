package question

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-english/internal/grading"
)

type staticTranscriber string

func (s staticTranscriber) Transcribe(context.Context, io.Reader, string) (string, error) {
	return string(s), nil
}

func TestServicePresent(t *testing.T) {
	svc := NewService(seeded(t), grading.NewDefaultGrader(), nil)

	p, err := svc.Present(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "I have a ___ ___", p.MaskedEN)
	assert.Equal(t, []grading.Hint{{Word: "red", Mask: "___"}, {Word: "car", Mask: "___"}}, p.Hints)
	assert.Equal(t, "Kırmızı bir arabam var", p.TR)

	_, err = svc.Present(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := svc.PresentRandom(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, r.MaskedEN)
}

func TestServiceCheck(t *testing.T) {
	svc := NewService(seeded(t), grading.NewDefaultGrader(), nil)
	ctx := context.Background()

	res, err := svc.Check(ctx, 1, "i have a red car!")
	require.NoError(t, err)
	assert.Equal(t, CheckResult{
		IsCorrect:     true,
		Similarity:    1,
		Feedback:      "Perfect!",
		CorrectAnswer: "I have a red car",
		UserAnswer:    "i have a red car!",
	}, res)

	res, err = svc.Check(ctx, 2, "I eat")
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, 0.33, res.Similarity)
	assert.Equal(t, "Missing key words: apples", res.Feedback)

	res, err = svc.Check(ctx, 3, "I like bananaz")
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, 0.95, res.Similarity)

	_, err = svc.Check(ctx, 77, "anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCheckSpoken(t *testing.T) {
	svc := NewService(seeded(t), grading.NewDefaultGrader(grading.WithTranscriber(staticTranscriber("I like bananas"))), nil)
	res, err := svc.CheckSpoken(context.Background(), 3, nil, "a.wav")
	require.Error(t, err, "nil audio is rejected")

	res, err = svc.CheckSpoken(context.Background(), 3, emptyReader{}, "a.wav")
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "I like bananas", res.UserAnswer)
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }
