package stt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITranscribe(t *testing.T) {
	var gotModel, gotLang, gotAudio string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		gotModel = r.FormValue("model")
		gotLang = r.FormValue("language")
		f, _, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		b, _ := io.ReadAll(f)
		gotAudio = string(b)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": " The cat is black. "})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	o := NewOpenAIWithConfig(cfg)

	text, err := o.Transcribe(context.Background(), strings.NewReader("audio-bytes"), "answer.wav")
	require.NoError(t, err)
	assert.Equal(t, "The cat is black.", text)
	assert.Equal(t, openai.Whisper1, gotModel)
	assert.Equal(t, "en", gotLang)
	assert.Equal(t, "audio-bytes", gotAudio)
}

func TestOpenAITranscribeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("nope")
	cfg.BaseURL = srv.URL + "/v1"
	_, err := NewOpenAIWithConfig(cfg).Transcribe(context.Background(), strings.NewReader("x"), "")
	assert.Error(t, err)
}
