package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mind-engage/mindengage-english/internal/api/http"
	"github.com/mind-engage/mindengage-english/internal/audit"
	auth "github.com/mind-engage/mindengage-english/internal/auth/middleware"
	"github.com/mind-engage/mindengage-english/internal/config"
	"github.com/mind-engage/mindengage-english/internal/db"
	"github.com/mind-engage/mindengage-english/internal/grading"
	"github.com/mind-engage/mindengage-english/internal/grading/stt"
	"github.com/mind-engage/mindengage-english/internal/logging"
	"github.com/mind-engage/mindengage-english/internal/question"
	"github.com/mind-engage/mindengage-english/internal/rbac"
	"github.com/mind-engage/mindengage-english/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	logger, err := logging.New(logging.Options{JSON: cfg.LogJSON, File: cfg.LogFile})
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Close()

	if err := run(cfg, logger); err != nil {
		logger.Error("gateway stopped", "error", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger logging.Logger) error {
	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return err
	}
	defer dbh.Close()
	store := question.NewSQLStore(dbh, cfg.DBDriver)

	if cfg.QuestionsFile != "" {
		qs, err := question.LoadFile(cfg.QuestionsFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn("questions file not found, serving stored catalog", "path", cfg.QuestionsFile)
		case err != nil:
			return err
		default:
			if err := question.Seed(ctx, store, qs); err != nil {
				return err
			}
			logger.Info("questions loaded", "path", cfg.QuestionsFile, "count", len(qs))
		}
	}

	// --- Speech-to-text ---
	transcriber, model := newTranscriber(cfg, logger)
	opts := []grading.Option{grading.WithPassThreshold(cfg.PassThreshold)}
	if transcriber != nil {
		opts = append(opts, grading.WithTranscriber(transcriber))
	}
	svc := question.NewService(store, grading.NewDefaultGrader(opts...), logger)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		return err
	}

	// API edits are journaled; startup seeding is not
	events := audit.NewEventRepo(dbh, cfg.SiteID)
	catalog := question.WithJournal(store, events)

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.AdminUser, cfg.AdminPassHash)
	info := api.HealthInfo{Store: store, STTModel: model}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: cfg.Mode == config.ModeOnline,
		MaxAge:           300,
	}))

	r.Get("/", api.RootHandler(info))
	r.Get("/health", api.HealthHandler(info))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	// Learner API (open)
	r.Get("/questions", api.ListQuestionsHandler(store))
	r.Get("/questions/{id}", api.GetQuestionHandler(svc))
	r.Get("/random-question", api.RandomQuestionHandler(svc))
	r.Post("/check-answer", api.CheckAnswerHandler(svc))
	r.Post("/speech-to-text", api.SpeechToTextHandler(api.SpeechDeps{
		STT:      transcriber,
		Blobs:    bs,
		Service:  svc,
		MaxBytes: cfg.MaxAudioBytes,
		Log:      logger,
	}))

	// Catalog maintenance (JWT → role in context → RBAC)
	r.Post("/auth/login", auth.LoginHandler(authSvc))
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.With(rbac.Require("question:write")).
			Put("/questions", api.PutQuestionHandler(catalog))
		pr.With(rbac.Require("question:write")).
			Delete("/questions/{id}", api.DeleteQuestionHandler(catalog))
		pr.With(rbac.Require("audit:view")).
			Get("/audit/events", api.AuditEventsHandler(events))
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "mode", string(cfg.Mode), "db", cfg.DBDriver, "stt", cfg.STTDriver)
		errCh <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sig:
		logger.Info("shutting down")
	}
	shutdownCtx, stop := context.WithTimeout(context.Background(), 15*time.Second)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}

// newTranscriber picks the speech backend. The returned model name is empty
// when speech recognition is unavailable.
func newTranscriber(cfg config.Config, logger logging.Logger) (grading.Transcriber, string) {
	switch cfg.STTDriver {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("STT_DRIVER=openai but OPENAI_API_KEY is empty; speech disabled")
			return nil, ""
		}
		o := stt.NewOpenAI(cfg.OpenAIAPIKey)
		return o, o.Model
	case "whisper":
		w := stt.NewWhisperCLI(cfg.WhisperModel)
		w.Bin = cfg.WhisperBin
		if !w.Available() {
			logger.Warn("whisper binary not found; speech disabled", "bin", cfg.WhisperBin)
			return nil, ""
		}
		logger.Info("whisper available", "model", w.Model)
		return w, w.Model
	default:
		return nil, ""
	}
}
