package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	auth "github.com/mind-engage/mindengage-english/internal/auth/middleware"
	"github.com/mind-engage/mindengage-english/internal/db"
	"github.com/mind-engage/mindengage-english/internal/grading"
	"github.com/mind-engage/mindengage-english/internal/question"
)

func newScoreCmd(out emitFunc) *cobra.Command {
	var reference, answer string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answer against a reference sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(reference) == "" {
				return errors.New("--reference is required")
			}
			m := grading.Score(reference, answer)
			text := fmt.Sprintf("%.2f %s (pass=%t)", m.Similarity, m.Feedback, m.Similarity >= grading.PassThreshold)
			return out(cmd, m, text)
		},
	}
	cmd.Flags().StringVarP(&reference, "reference", "r", "", "Reference sentence")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "Learner answer")
	return cmd
}

func newMaskCmd(out emitFunc) *cobra.Command {
	var sentence string
	var keywords []string
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Blank keywords out of a sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			masked, hints := grading.Mask(sentence, keywords)
			words := make([]string, len(hints))
			for i, h := range hints {
				words[i] = h.Word
			}
			return out(cmd, map[string]any{"masked": masked, "hints": hints},
				masked+"\nhints: "+strings.Join(words, ", "))
		},
	}
	cmd.Flags().StringVarP(&sentence, "sentence", "s", "", "Reference sentence")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Keyword to blank (repeatable)")
	return cmd
}

func newNormalizeCmd(out emitFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the canonical form used for word comparison",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := grading.Normalize(strings.Join(args, " "))
			return out(cmd, map[string]string{"normalized": n}, n)
		},
	}
}

func newCheckCmd(out emitFunc) *cobra.Command {
	var file string
	var id int
	var threshold float64
	cmd := &cobra.Command{
		Use:   "check <answer>...",
		Short: "Grade an answer against a question from a catalog file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			store, closeStore, err := openCatalog(ctx, file)
			if err != nil {
				return err
			}
			defer closeStore()
			svc := question.NewService(store, grading.NewDefaultGrader(grading.WithPassThreshold(threshold)), nil)
			res, err := svc.Check(ctx, id, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("question %d: %w", id, err)
			}
			text := fmt.Sprintf("%.2f %s\ncorrect answer: %s", res.Similarity, res.Feedback, res.CorrectAnswer)
			return out(cmd, res, text)
		},
	}
	cmd.Flags().StringVarP(&file, "questions", "q", "questions.json", "Catalog file (JSON or YAML)")
	cmd.Flags().IntVar(&id, "id", 0, "Question id")
	cmd.Flags().Float64Var(&threshold, "threshold", grading.PassThreshold, "Pass threshold")
	return cmd
}

// openCatalog loads a catalog file into a private in-memory database.
func openCatalog(ctx context.Context, path string) (question.Store, func(), error) {
	qs, err := question.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	dsn := fmt.Sprintf("file:grader-cli-%d?mode=memory&cache=shared", os.Getpid())
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		return nil, nil, err
	}
	store := question.NewSQLStore(dbh, string(db.DriverSQLite))
	if err := question.Seed(ctx, store, qs); err != nil {
		dbh.Close()
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return store, func() { dbh.Close() }, nil
}

func newTokenCmd(out emitFunc) *cobra.Command {
	var sub, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a catalog-maintenance token signed with AUTH_HMAC_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("AUTH_HMAC_SECRET")
			if secret == "" {
				return errors.New("AUTH_HMAC_SECRET is not set")
			}
			tok, err := auth.NewAuthService(secret, "", "").IssueJWT(sub, role)
			if err != nil {
				return err
			}
			return out(cmd, map[string]string{"access_token": tok}, tok)
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "editor", "Token subject")
	cmd.Flags().StringVar(&role, "role", "editor", "Role: editor or admin")
	return cmd
}
