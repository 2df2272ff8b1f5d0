package stt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptyAudio is returned when the uploaded recording has no bytes.
var ErrEmptyAudio = errors.New("empty audio")

// WhisperCLI transcribes audio with a locally installed whisper binary.
type WhisperCLI struct {
	Bin     string
	Model   string // tiny|base|small|medium|large
	Lang    string
	Timeout time.Duration
}

func NewWhisperCLI(model string) *WhisperCLI {
	if model == "" {
		model = "base"
	}
	return &WhisperCLI{Bin: "whisper", Model: model, Lang: "en", Timeout: 2 * time.Minute}
}

// Available reports whether the binary can be found.
func (w *WhisperCLI) Available() bool {
	_, err := exec.LookPath(w.Bin)
	return err == nil
}

func (w *WhisperCLI) Transcribe(ctx context.Context, r io.Reader, filename string) (string, error) {
	dir, err := os.MkdirTemp("", "stt-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".wav"
	}
	in := filepath.Join(dir, "speech"+ext)
	f, err := os.Create(in)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(f, r)
	f.Close()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrEmptyAudio
	}
	return w.exec(ctx, in, dir)
}

func (w *WhisperCLI) exec(ctx context.Context, inPath, outDir string) (string, error) {
	if !w.Available() {
		return "", fmt.Errorf("%s not found in PATH", w.Bin)
	}
	args := []string{inPath,
		"--model", w.Model,
		"--fp16", "False",
		"--verbose", "False",
		"--output_format", "txt",
		"--output_dir", outDir,
	}
	if w.Lang != "" {
		args = append(args, "--language", w.Lang)
	}
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, w.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	out, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
