package config

import (
	"os"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string
	SiteID   string // tags audit events

	DBDriver string
	DBDSN    string

	QuestionsFile string // JSON or YAML seed, loaded at startup
	BlobBasePath  string // audio uploads

	STTDriver     string // whisper|openai|none
	WhisperBin    string
	WhisperModel  string // tiny|base|small|medium|large
	OpenAIAPIKey  string
	MaxAudioBytes int64

	PassThreshold float64

	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	LogJSON bool
	LogFile string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8000"),
		SiteID:             envOr("SITE_ID", "local"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		QuestionsFile:      envOr("QUESTIONS_FILE", "questions.json"),
		BlobBasePath:       envOr("BLOB_BASE_PATH", "./data"),
		STTDriver:          envOr("STT_DRIVER", "whisper"),
		WhisperBin:         envOr("WHISPER_BIN", "whisper"),
		WhisperModel:       envOr("WHISPER_MODEL", "base"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		MaxAudioBytes:      int64(envInt("MAX_AUDIO_BYTES", 10*1024*1024)),
		PassThreshold:      envFloat("PASS_THRESHOLD", 0.97),
		AuthHMACSecret:     envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:          envOr("ADMIN_USER", "admin"),
		AdminPassHash:      envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://english.mindengage.ai"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "*"),
		LogJSON:            envBool("LOG_JSON", mode == ModeOnline),
		LogFile:            os.Getenv("LOG_FILE"),
	}
}

// CORSOrigins returns the allow-list for the active mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return def
}
func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil && v > 0 && v <= 1 {
		return v
	}
	return def
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
