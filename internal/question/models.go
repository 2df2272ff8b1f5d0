package question

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mind-engage/mindengage-english/internal/grading"
)

var ErrNotFound = errors.New("question not found")

// Question is one catalog entry: an English reference sentence, its
// translation prompt and the keywords blanked out when it is presented.
type Question struct {
	ID        int      `json:"id" yaml:"id"`
	Level     string   `json:"level" yaml:"level"` // A1..C2
	Topic     string   `json:"topic" yaml:"topic"`
	TR        string   `json:"tr" yaml:"tr"` // prompt shown to the learner
	EN        string   `json:"en" yaml:"en"` // reference answer
	Keywords  []string `json:"keywords" yaml:"keywords"`
	WordCount int      `json:"word_count" yaml:"word_count"`
}

// Presented is the learner-facing view: the reference sentence only
// appears masked.
type Presented struct {
	ID        int            `json:"id"`
	Level     string         `json:"level"`
	Topic     string         `json:"topic"`
	TR        string         `json:"tr"`
	MaskedEN  string         `json:"masked_en"`
	Hints     []grading.Hint `json:"hints"`
	WordCount int            `json:"word_count"`
}

func (q Question) Present() Presented {
	masked, hints := grading.Mask(q.EN, q.Keywords)
	return Presented{
		ID:        q.ID,
		Level:     q.Level,
		Topic:     q.Topic,
		TR:        q.TR,
		MaskedEN:  masked,
		Hints:     hints,
		WordCount: q.WordCount,
	}
}

func (q Question) Validate() error {
	if q.ID <= 0 {
		return fmt.Errorf("question id must be positive, got %d", q.ID)
	}
	if strings.TrimSpace(q.EN) == "" {
		return fmt.Errorf("question %d: empty reference sentence", q.ID)
	}
	return nil
}

// withDefaults fills WordCount from the reference when the source left it out.
func (q Question) withDefaults() Question {
	if q.WordCount == 0 {
		q.WordCount = len(strings.Fields(q.EN))
	}
	if q.Keywords == nil {
		q.Keywords = []string{}
	}
	return q
}

// CheckResult is returned to the learner after grading.
type CheckResult struct {
	IsCorrect     bool    `json:"is_correct"`
	Similarity    float64 `json:"similarity"` // rounded to 2 places
	Feedback      string  `json:"feedback"`
	CorrectAnswer string  `json:"correct_answer"`
	UserAnswer    string  `json:"user_answer"`
}
