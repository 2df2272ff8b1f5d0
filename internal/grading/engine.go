package grading

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoTranscriber is returned when a spoken answer arrives and no
// speech-to-text backend is configured.
var ErrNoTranscriber = errors.New("speech recognition is not configured")

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, r io.Reader, filename string) (string, error)
}

// Mode says how an answer was given.
type Mode string

const (
	ModeTyped  Mode = "typed"
	ModeSpoken Mode = "spoken"
)

// Q is a minimal view of a question needed for grading.
type Q struct {
	Reference string
	Keywords  []string
}

// Answer is one learner submission. Text is used for typed answers, Audio
// and Filename for spoken ones.
type Answer struct {
	Mode     Mode
	Text     string
	Audio    io.Reader
	Filename string
}

// Result is the outcome of grading a single answer.
type Result struct {
	MatchResult
	Transcript string // text that was scored
	Passed     bool
}

// Strategy grades a single answer.
type Strategy interface {
	Grade(ctx context.Context, q Q, a Answer) (Result, error)
}

// Grader routes by answer mode to the correct Strategy.
type Grader interface {
	Grade(ctx context.Context, q Q, a Answer) (Result, error)
}

type defaultGrader struct {
	strategies map[Mode]Strategy
}

func (g *defaultGrader) Grade(ctx context.Context, q Q, a Answer) (Result, error) {
	mode := a.Mode
	if mode == "" {
		mode = ModeTyped
	}
	s, ok := g.strategies[mode]
	if !ok {
		return Result{}, fmt.Errorf("unsupported answer mode %q", a.Mode)
	}
	return s.Grade(ctx, q, a)
}

// Engine options

type Option func(*config)

type config struct {
	PassThreshold float64
	Transcriber   Transcriber // optional; spoken answers fail without it
}

func WithPassThreshold(t float64) Option   { return func(c *config) { c.PassThreshold = t } }
func WithTranscriber(t Transcriber) Option { return func(c *config) { c.Transcriber = t } }

// NewDefaultGrader installs built-in strategies.
func NewDefaultGrader(opts ...Option) Grader {
	cfg := &config{PassThreshold: PassThreshold}
	for _, o := range opts {
		o(cfg)
	}
	typed := typedStrategy{threshold: cfg.PassThreshold}
	return &defaultGrader{
		strategies: map[Mode]Strategy{
			ModeTyped:  typed,
			ModeSpoken: spokenStrategy{typed: typed, stt: cfg.Transcriber},
		},
	}
}

// --- Strategies ---

type typedStrategy struct{ threshold float64 }

func (s typedStrategy) Grade(_ context.Context, q Q, a Answer) (Result, error) {
	m := Score(q.Reference, a.Text)
	return Result{MatchResult: m, Transcript: a.Text, Passed: m.Similarity >= s.threshold}, nil
}

type spokenStrategy struct {
	typed typedStrategy
	stt   Transcriber
}

func (s spokenStrategy) Grade(ctx context.Context, q Q, a Answer) (Result, error) {
	if s.stt == nil {
		return Result{}, ErrNoTranscriber
	}
	if a.Audio == nil {
		return Result{}, errors.New("spoken answer has no audio")
	}
	text, err := s.stt.Transcribe(ctx, a.Audio, a.Filename)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: %w", err)
	}
	return s.typed.Grade(ctx, q, Answer{Mode: ModeTyped, Text: text})
}
