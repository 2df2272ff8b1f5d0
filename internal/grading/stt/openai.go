package stt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAI transcribes audio through the hosted Whisper API.
type OpenAI struct {
	Client *openai.Client
	Model  string
	Lang   string
}

func NewOpenAI(apiKey string) *OpenAI {
	return NewOpenAIWithConfig(openai.DefaultConfig(apiKey))
}

func NewOpenAIWithConfig(cfg openai.ClientConfig) *OpenAI {
	return &OpenAI{
		Client: openai.NewClientWithConfig(cfg),
		Model:  openai.Whisper1,
		Lang:   "en",
	}
}

func (o *OpenAI) Transcribe(ctx context.Context, r io.Reader, filename string) (string, error) {
	if filename == "" {
		filename = "speech.wav"
	}
	resp, err := o.Client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.Model,
		FilePath: filename,
		Reader:   r,
		Language: o.Lang,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
