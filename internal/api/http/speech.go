package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-english/internal/grading"
	"github.com/mind-engage/mindengage-english/internal/logging"
	"github.com/mind-engage/mindengage-english/internal/question"
	"github.com/mind-engage/mindengage-english/internal/storage"
)

// multipartSlack covers form boundaries and headers around the audio part.
const multipartSlack = 1 << 20

type SpeechDeps struct {
	STT      grading.Transcriber // nil when speech recognition is unavailable
	Blobs    storage.BlobStore
	Service  *question.Service // grades the transcript when question_id is sent
	MaxBytes int64
	Log      logging.Logger
}

type speechResp struct {
	Text       string                `json:"text"`
	Confidence float64               `json:"confidence"`
	Message    string                `json:"message"`
	Result     *question.CheckResult `json:"result,omitempty"`
}

// POST /speech-to-text  multipart: file=<audio>, optional question_id
func SpeechToTextHandler(d SpeechDeps) http.HandlerFunc {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if d.STT == nil {
			http.Error(w, "Speech recognition service is not available", http.StatusServiceUnavailable)
			return
		}
		tooLarge := fmt.Sprintf("File too large. Maximum size is %s.", humanize.IBytes(uint64(d.MaxBytes)))

		r.Body = http.MaxBytesReader(w, r.Body, d.MaxBytes+multipartSlack)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				http.Error(w, tooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		if !strings.HasPrefix(hdr.Header.Get("Content-Type"), "audio/") {
			http.Error(w, "Invalid file type. Please upload an audio file.", http.StatusBadRequest)
			return
		}
		if hdr.Size > d.MaxBytes {
			http.Error(w, tooLarge, http.StatusRequestEntityTooLarge)
			return
		}

		var qid int
		if v := strings.TrimSpace(r.FormValue("question_id")); v != "" && d.Service != nil {
			if qid, err = strconv.Atoi(v); err != nil {
				http.Error(w, "question_id must be an integer", http.StatusBadRequest)
				return
			}
		}

		ext := strings.ToLower(filepath.Ext(hdr.Filename))
		if ext == "" {
			ext = ".wav"
		}
		key := "audio/" + uuid.NewString() + ext
		ctx := r.Context()
		if _, err := d.Blobs.Put(ctx, key, f); err != nil {
			d.Log.Error("store upload failed", "key", key, "error", err)
			http.Error(w, "Could not process audio. Please try again.", http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := d.Blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
				d.Log.Warn("could not delete upload", "key", key, "error", err)
			}
		}()
		d.Log.Info("processing audio file", "filename", hdr.Filename, "bytes", hdr.Size)

		rc, err := d.Blobs.Get(ctx, key)
		if err != nil {
			d.Log.Error("reopen upload failed", "key", key, "error", err)
			http.Error(w, "Could not process audio. Please try again.", http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		resp, err := transcribe(ctx, d, rc, filepath.Base(key), qid)
		if err != nil {
			switch {
			case errors.Is(err, question.ErrNotFound):
				writeStoreError(w, err)
				return
			case errors.Is(err, grading.ErrNoTranscriber):
				http.Error(w, "Speech recognition service is not available", http.StatusServiceUnavailable)
				return
			}
			d.Log.Error("speech processing error", "error", err)
			http.Error(w, "Could not process audio. Please try again.", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func transcribe(ctx context.Context, d SpeechDeps, audio io.Reader, filename string, qid int) (speechResp, error) {
	var resp speechResp
	if qid != 0 {
		res, err := d.Service.CheckSpoken(ctx, qid, audio, filename)
		if err != nil {
			return resp, err
		}
		resp.Text = strings.TrimSpace(res.UserAnswer)
		resp.Result = &res
	} else {
		text, err := d.STT.Transcribe(ctx, audio, filename)
		if err != nil {
			return resp, err
		}
		resp.Text = strings.TrimSpace(text)
	}

	if resp.Text == "" {
		resp.Message = "No speech detected. Please try speaking more clearly."
		return resp, nil
	}
	d.Log.Info("transcription successful", "text", resp.Text)
	// whisper gives no confidence score
	resp.Confidence = 1.0
	resp.Message = "Speech processed successfully"
	return resp, nil
}
