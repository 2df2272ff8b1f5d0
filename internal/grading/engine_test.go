package grading

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	text string
	err  error
	got  string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, r io.Reader, _ string) (string, error) {
	b, _ := io.ReadAll(r)
	f.got = string(b)
	return f.text, f.err
}

func TestGraderTyped(t *testing.T) {
	g := NewDefaultGrader()
	q := Q{Reference: "The cat is black."}

	res, err := g.Grade(context.Background(), q, Answer{Text: "the cat is black"})
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, "Perfect!", res.Feedback)
	assert.Equal(t, "the cat is black", res.Transcript)

	res, err = g.Grade(context.Background(), q, Answer{Mode: ModeTyped, Text: "the cat black"})
	require.NoError(t, err)
	assert.False(t, res.Passed)
}

func TestGraderPassThresholdOption(t *testing.T) {
	g := NewDefaultGrader(WithPassThreshold(0.9))
	res, err := g.Grade(context.Background(), Q{Reference: "icecream"}, Answer{Text: "ice cream"})
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestGraderSpoken(t *testing.T) {
	stt := &fakeTranscriber{text: "I like bananas"}
	g := NewDefaultGrader(WithTranscriber(stt))

	res, err := g.Grade(context.Background(), Q{Reference: "I like bananas."}, Answer{
		Mode:     ModeSpoken,
		Audio:    strings.NewReader("RIFF"),
		Filename: "a.wav",
	})
	require.NoError(t, err)
	assert.Equal(t, "RIFF", stt.got)
	assert.Equal(t, "I like bananas", res.Transcript)
	assert.Equal(t, 1.0, res.Similarity)
	assert.True(t, res.Passed)
}

func TestGraderSpokenErrors(t *testing.T) {
	q := Q{Reference: "hello"}
	audio := Answer{Mode: ModeSpoken, Audio: strings.NewReader("x")}

	_, err := NewDefaultGrader().Grade(context.Background(), q, audio)
	assert.ErrorIs(t, err, ErrNoTranscriber)

	boom := errors.New("boom")
	_, err = NewDefaultGrader(WithTranscriber(&fakeTranscriber{err: boom})).Grade(context.Background(), q, audio)
	assert.ErrorIs(t, err, boom)

	_, err = NewDefaultGrader(WithTranscriber(&fakeTranscriber{})).Grade(context.Background(), q, Answer{Mode: ModeSpoken})
	assert.Error(t, err)
}

func TestGraderUnknownMode(t *testing.T) {
	_, err := NewDefaultGrader().Grade(context.Background(), Q{}, Answer{Mode: "sign"})
	assert.Error(t, err)
}
