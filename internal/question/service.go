package question

import (
	"context"
	"io"
	"math"

	"github.com/mind-engage/mindengage-english/internal/grading"
	"github.com/mind-engage/mindengage-english/internal/logging"
)

// Service ties the catalog to the grading engine.
type Service struct {
	store  Store
	grader grading.Grader
	log    logging.Logger
}

func NewService(store Store, grader grading.Grader, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{store: store, grader: grader, log: log}
}

func (s *Service) Store() Store { return s.store }

func (s *Service) Present(ctx context.Context, id int) (Presented, error) {
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return Presented{}, err
	}
	return q.Present(), nil
}

func (s *Service) PresentRandom(ctx context.Context) (Presented, error) {
	q, err := s.store.Random(ctx)
	if err != nil {
		return Presented{}, err
	}
	return q.Present(), nil
}

// Check grades a typed answer.
func (s *Service) Check(ctx context.Context, id int, answer string) (CheckResult, error) {
	return s.check(ctx, id, grading.Answer{Mode: grading.ModeTyped, Text: answer})
}

// CheckSpoken transcribes audio and grades the transcript.
func (s *Service) CheckSpoken(ctx context.Context, id int, audio io.Reader, filename string) (CheckResult, error) {
	return s.check(ctx, id, grading.Answer{Mode: grading.ModeSpoken, Audio: audio, Filename: filename})
}

func (s *Service) check(ctx context.Context, id int, a grading.Answer) (CheckResult, error) {
	q, err := s.store.Get(ctx, id)
	if err != nil {
		return CheckResult{}, err
	}
	res, err := s.grader.Grade(ctx, grading.Q{Reference: q.EN, Keywords: q.Keywords}, a)
	if err != nil {
		return CheckResult{}, err
	}
	s.log.Info("answer graded",
		"question_id", id,
		"mode", string(a.Mode),
		"similarity", res.Similarity,
		"passed", res.Passed,
	)
	return CheckResult{
		IsCorrect:     res.Passed,
		Similarity:    math.Round(res.Similarity*100) / 100,
		Feedback:      res.Feedback,
		CorrectAnswer: q.EN,
		UserAnswer:    res.Transcript,
	}, nil
}
